package verify

import (
	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
	"github.com/pkeir/ctcheckmm/pkg/mm/token"
)

// errAt builds an error diagnostic anchored to tok.
func errAt(kind diag.Kind, tok token.Token, subject, msg string) diag.Diagnostic {
	return diag.New(kind, subject, msg, tok.SyntaxError(msg))
}

// warnAt builds a warning diagnostic anchored to tok.
func warnAt(kind diag.Kind, tok token.Token, subject, msg string) diag.Diagnostic {
	return diag.NewWarning(kind, subject, msg, tok.SyntaxError(msg))
}

// errEOF builds an error diagnostic anchored to the last token consumed
// before running out of input. There is no next token to blame, so the
// message must carry the context itself.
func (d *Driver) errEOF(kind diag.Kind, subject, msg string) diag.Diagnostic {
	if last, ok := d.tokens.last(); ok {
		return errAt(kind, last, subject, msg)
	}

	return diag.New(kind, subject, msg, nil)
}
