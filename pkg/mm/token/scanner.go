package token

import "github.com/pkeir/ctcheckmm/pkg/source"

// rawScanner splits a single file's contents into whitespace-delimited
// tokens of printable ASCII, without any awareness of comments or
// includes. Those are layered on top in tokenizer.go.
type rawScanner struct {
	file  *source.File
	runes []rune
	index int
}

func newRawScanner(file *source.File) *rawScanner {
	return &rawScanner{file, file.Contents(), 0}
}

func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

func isPrintableASCII(c rune) bool {
	return c >= 0x21 && c <= 0x7E
}

// next returns the next raw token, or ok=false at end of input. err is set
// if a non-whitespace, non-printable byte is encountered.
func (s *rawScanner) next() (Token, bool, error) {
	for s.index < len(s.runes) && isWhitespace(s.runes[s.index]) {
		s.index++
	}

	if s.index >= len(s.runes) {
		return Token{}, false, nil
	}

	start := s.index

	for s.index < len(s.runes) && !isWhitespace(s.runes[s.index]) {
		if !isPrintableASCII(s.runes[s.index]) {
			span := source.NewSpan(s.index, s.index+1)
			return Token{}, false, s.file.SyntaxError(span, "invalid byte in token")
		}

		s.index++
	}

	span := source.NewSpan(start, s.index)

	return Token{string(s.runes[start:s.index]), s.file, span}, true, nil
}
