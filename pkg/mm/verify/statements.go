package verify

import (
	"github.com/pkeir/ctcheckmm/pkg/mm/ast"
	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
	"github.com/pkeir/ctcheckmm/pkg/mm/token"
)

// parseLabeledStatement dispatches a label token to the statement kind
// that follows it: "$f", "$e", "$a", or "$p".
func (d *Driver) parseLabeledStatement(label token.Token) bool {
	if d.st.IsLabelUsed(label.Text) {
		return d.fail(errAt(diag.Declaration, label, label.Text, label.Text+" is already used as a hypothesis or assertion label"))
	}

	kind, ok := d.tokens.next()
	if !ok {
		return d.fail(d.errEOF(diag.ProofStructure, label.Text, "label "+label.Text+" is not followed by a statement"))
	}

	switch kind.Text {
	case "$f":
		return d.parseFloating(label)
	case "$e":
		return d.parseEssential(label)
	case "$a":
		return d.parseAxiom(label)
	case "$p":
		return d.parseTheorem(label)
	default:
		return d.fail(errAt(diag.ProofStructure, kind, kind.Text, label.Text+" must be followed by $f, $e, $a, or $p, not "+kind.Text))
	}
}

// parseFloating handles "label $f <typecode> <variable> $.". Unlike $e,
// $a, and $p, this does not go through readExpression: the variable
// being declared here has by definition no active floating hypothesis
// yet, so readExpression's "constant or variable with an active $f"
// rule would always reject it. Read the typecode and variable directly
// instead, matching the reference's parsef.
func (d *Driver) parseFloating(label token.Token) bool {
	typecodeTok, ok := d.tokens.next()
	if !ok {
		return d.fail(d.errEOF(diag.ExpressionKind, label.Text, "unterminated $f statement"))
	}

	if !d.st.IsConstant(typecodeTok.Text) {
		return d.fail(errAt(diag.ExpressionKind, typecodeTok, typecodeTok.Text, "$f statement must begin with a constant (its typecode)"))
	}

	variableTok, ok := d.tokens.next()
	if !ok {
		return d.fail(d.errEOF(diag.ExpressionKind, label.Text, "unterminated $f statement"))
	}

	if !d.st.IsActiveVariable(variableTok.Text) {
		return d.fail(errAt(diag.ExpressionKind, variableTok, variableTok.Text, variableTok.Text+" is not an active variable"))
	}

	end, ok := d.tokens.next()
	if !ok {
		return d.fail(d.errEOF(diag.ExpressionKind, label.Text, "unterminated $f statement"))
	}

	if end.Text != "$." {
		return d.fail(errAt(diag.ExpressionKind, end, end.Text, "$f statement must name exactly a typecode and a variable"))
	}

	variable := variableTok.Text

	if existing, has := d.st.LookupActiveFloating(variable); has {
		return d.fail(errAt(diag.Declaration, label, variable, variable+" already has an active floating hypothesis ("+existing+")"))
	}

	d.st.AddHypothesis(label.Text, ast.Floating{Typecode: typecodeTok.Text, Variable: variable})

	return true
}

// parseEssential handles "label $e <expression> $.".
func (d *Driver) parseEssential(label token.Token) bool {
	expr, ok := d.readExpression("$.", "$e")
	if !ok {
		return false
	}

	d.st.AddHypothesis(label.Text, ast.Essential{Expr: expr})

	return true
}

// parseAxiom handles "label $a <expression> $.", no proof follows.
func (d *Driver) parseAxiom(label token.Token) bool {
	expr, ok := d.readExpression("$.", "$a")
	if !ok {
		return false
	}

	d.st.AddAssertion(BuildAssertion(d.st, label.Text, expr))

	return true
}

// parseTheorem handles "label $p <expression> $= <proof> $.": the
// expression is followed by a proof, either an uncompressed label list or
// a compressed, letter-encoded one.
func (d *Driver) parseTheorem(label token.Token) bool {
	expr, ok := d.readExpression("$=", "$p")
	if !ok {
		return false
	}

	assertion := BuildAssertion(d.st, label.Text, expr)

	next, ok := d.tokens.peek()
	if !ok {
		return d.fail(d.errEOF(diag.ProofStructure, label.Text, "theorem "+label.Text+" has no proof"))
	}

	var verified bool

	if next.Text == "(" {
		verified, ok = d.runCompressedProof(label, assertion)
	} else {
		verified, ok = d.runUncompressedProof(label, assertion)
	}

	if !ok {
		return false
	}

	d.st.AddAssertion(assertion)

	if verified {
		d.verifiedOK++
	}

	return true
}
