package verify

import "github.com/pkeir/ctcheckmm/pkg/mm/diag"

// parseConstants handles "$c ... $.". Constants may only be declared in
// the outermost scope and must not collide with a symbol already
// declared a variable.
func (d *Driver) parseConstants() bool {
	if d.st.Depth() != 1 {
		tok, _ := d.tokens.last()
		return d.fail(errAt(diag.Declaration, tok, "$c", "$c statement is only allowed in the outermost scope"))
	}

	for {
		tok, ok := d.tokens.next()
		if !ok {
			return d.fail(d.errEOF(diag.Declaration, "$c", "unterminated $c statement"))
		}

		if tok.Text == "$." {
			return true
		}

		if !tok.IsMathSymbol() {
			return d.fail(errAt(diag.Declaration, tok, tok.Text, tok.Text+" is not a valid math symbol"))
		}

		if d.st.IsVariable(tok.Text) {
			return d.fail(errAt(diag.Declaration, tok, tok.Text, tok.Text+" was already declared a variable"))
		}

		if d.st.IsLabelUsed(tok.Text) {
			return d.fail(errAt(diag.Declaration, tok, tok.Text, tok.Text+" is already used as a hypothesis or assertion label"))
		}

		if d.st.DeclareConstant(tok.Text) {
			return d.fail(errAt(diag.Declaration, tok, tok.Text, tok.Text+" is already declared a constant"))
		}
	}
}

// parseVariables handles "$v ... $.". Variables may be declared in any
// scope; a variable may be reactivated once the scope that previously
// activated it has closed (see DESIGN.md's open-question resolution).
func (d *Driver) parseVariables() bool {
	for {
		tok, ok := d.tokens.next()
		if !ok {
			return d.fail(d.errEOF(diag.Declaration, "$v", "unterminated $v statement"))
		}

		if tok.Text == "$." {
			return true
		}

		if !tok.IsMathSymbol() {
			return d.fail(errAt(diag.Declaration, tok, tok.Text, tok.Text+" is not a valid math symbol"))
		}

		if d.st.IsConstant(tok.Text) {
			return d.fail(errAt(diag.Declaration, tok, tok.Text, tok.Text+" was already declared a constant"))
		}

		if d.st.IsLabelUsed(tok.Text) {
			return d.fail(errAt(diag.Declaration, tok, tok.Text, tok.Text+" is already used as a hypothesis or assertion label"))
		}

		if d.st.DeclareVariable(tok.Text) {
			return d.fail(errAt(diag.Declaration, tok, tok.Text, tok.Text+" is already an active variable"))
		}
	}
}

// parseDisjoint handles "$d ... $.": a list of two or more distinct,
// currently active variables, pairwise disjoint from one another.
func (d *Driver) parseDisjoint() bool {
	var vars []string

	for {
		tok, ok := d.tokens.next()
		if !ok {
			return d.fail(d.errEOF(diag.Declaration, "$d", "unterminated $d statement"))
		}

		if tok.Text == "$." {
			break
		}

		if !d.st.IsActiveVariable(tok.Text) {
			return d.fail(errAt(diag.Declaration, tok, tok.Text, tok.Text+" is not an active variable"))
		}

		for _, v := range vars {
			if v == tok.Text {
				return d.fail(errAt(diag.Declaration, tok, tok.Text, tok.Text+" appears more than once in this $d statement"))
			}
		}

		vars = append(vars, tok.Text)
	}

	if len(vars) < 2 {
		last, _ := d.tokens.last()
		return d.fail(errAt(diag.Declaration, last, "$d", "$d statement must name at least two variables"))
	}

	d.st.AddDisjointGroup(vars)

	return true
}
