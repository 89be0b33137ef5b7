package token

import "github.com/pkeir/ctcheckmm/pkg/source"

// Token is one maximal whitespace-delimited run of printable ASCII,
// together with the file and span it came from.
type Token struct {
	Text string
	File *source.File
	Span source.Span
}

// SyntaxError raises a syntax error anchored to this token.
func (t Token) SyntaxError(msg string) *source.SyntaxError {
	return t.File.SyntaxError(t.Span, msg)
}

// IsLabel reports whether this token's text is a well-formed Metamath
// label: a non-empty string over [A-Za-z0-9._-].
func (t Token) IsLabel() bool { return isLabel(t.Text) }

// IsMathSymbol reports whether this token's text could name a constant or
// variable: any token not containing '$'.
func (t Token) IsMathSymbol() bool { return isMathSymbol(t.Text) }

func isLabel(s string) bool {
	if len(s) == 0 {
		return false
	}

	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			return false
		}
	}

	return true
}

func isMathSymbol(s string) bool {
	for _, c := range s {
		if c == '$' {
			return false
		}
	}

	return len(s) > 0
}
