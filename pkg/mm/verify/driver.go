package verify

import (
	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
	"github.com/pkeir/ctcheckmm/pkg/mm/symtab"
	"github.com/pkeir/ctcheckmm/pkg/mm/token"
)

// Driver is the statement-parser front end: it consumes the token queue
// produced by pkg/mm/token, dispatches on the five statement kinds plus
// "${ $}", and drives pkg/mm/symtab and the assertion/proof machinery in
// this package. One Driver verifies exactly one database.
type Driver struct {
	st     *symtab.SymbolTable
	tokens *queue
	cfg    Config

	diags        []diag.Diagnostic
	verifiedOK   int
	verifiedWarn int
}

func newDriver(toks []token.Token, cfg Config) *Driver {
	return &Driver{
		st:     symtab.New(),
		tokens: newQueue(toks),
		cfg:    cfg,
	}
}

func (d *Driver) fail(diagnostic diag.Diagnostic) bool {
	d.diags = append(d.diags, diagnostic)
	return false
}

func (d *Driver) warn(diagnostic diag.Diagnostic) {
	d.diags = append(d.diags, diagnostic)
	d.verifiedWarn++
}

// run drives the top-level statement loop until the token queue is
// exhausted or a hard error aborts it. There is no recovery: the first
// hard error aborts.
func (d *Driver) run() {
	for {
		tok, ok := d.tokens.next()
		if !ok {
			break
		}

		var okStmt bool

		switch {
		case tok.Text == "${":
			d.st.PushScope()
			okStmt = true
		case tok.Text == "$}":
			okStmt = d.st.PopScope()
			if !okStmt {
				d.fail(errAt(diag.Scope, tok, "$}", "$} without corresponding ${"))
				return
			}
		case tok.Text == "$c":
			okStmt = d.parseConstants()
		case tok.Text == "$v":
			okStmt = d.parseVariables()
		case tok.Text == "$d":
			okStmt = d.parseDisjoint()
		case tok.IsLabel():
			okStmt = d.parseLabeledStatement(tok)
		default:
			d.fail(errAt(diag.ExpressionKind, tok, tok.Text, "unexpected token "+tok.Text+" encountered"))
			return
		}

		if !okStmt {
			return
		}
	}

	if d.st.Depth() > 1 {
		d.fail(d.errEOF(diag.Scope, "${", "${ without corresponding $}"))
	}
}
