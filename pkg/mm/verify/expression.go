package verify

import (
	"github.com/pkeir/ctcheckmm/pkg/mm/ast"
	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
)

// readExpression reads a typecode followed by zero or more symbols, each
// a constant or a variable covered by an active "$f" hypothesis, up to
// and including terminator. subject names the enclosing statement for
// diagnostics.
func (d *Driver) readExpression(terminator, subject string) (ast.Expression, bool) {
	first, ok := d.tokens.next()
	if !ok {
		return nil, d.fail(d.errEOF(diag.ExpressionKind, subject, "unterminated "+subject+" statement"))
	}

	if !d.st.IsConstant(first.Text) {
		return nil, d.fail(errAt(diag.ExpressionKind, first, first.Text, "expression must begin with a constant (its typecode)"))
	}

	expr := ast.Expression{first.Text}

	for {
		tok, ok := d.tokens.next()
		if !ok {
			return nil, d.fail(d.errEOF(diag.ExpressionKind, subject, "unterminated "+subject+" statement"))
		}

		if tok.Text == terminator {
			return expr, true
		}

		if d.st.IsConstant(tok.Text) {
			expr = append(expr, tok.Text)
			continue
		}

		if _, ok := d.st.LookupActiveFloating(tok.Text); ok {
			expr = append(expr, tok.Text)
			continue
		}

		return nil, d.fail(errAt(diag.ExpressionKind, tok, tok.Text, tok.Text+" is not a constant or a variable in an active $f statement"))
	}
}
