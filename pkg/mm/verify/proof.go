package verify

import (
	"github.com/pkeir/ctcheckmm/pkg/mm/ast"
	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
	"github.com/pkeir/ctcheckmm/pkg/mm/token"
)

// runUncompressedProof handles the "label $= step step ... $." form: a
// plain sequence of labels, each either an active hypothesis or a
// previously proved assertion, with "?" standing in for a step the
// author left unproved.
func (d *Driver) runUncompressedProof(theorem token.Token, assertion *ast.Assertion) (verified, ok bool) {
	var stack []ast.Expression

	incomplete := false

	for {
		tok, has := d.tokens.next()
		if !has {
			return false, d.fail(d.errEOF(diag.ProofStructure, theorem.Text, "unterminated proof for "+theorem.Text))
		}

		if tok.Text == "$." {
			break
		}

		if tok.Text == "?" {
			incomplete = true
			continue
		}

		if !tok.IsLabel() {
			return false, d.fail(errAt(diag.ProofStructure, tok, tok.Text, tok.Text+" is not a valid proof step"))
		}

		if tok.Text == theorem.Text {
			return false, d.fail(errAt(diag.ProofStructure, tok, tok.Text, tok.Text+" refers to itself"))
		}

		var failDiag diag.Diagnostic
		stack, ok, failDiag = d.applyStep(tok, tok.Text, stack)
		if !ok {
			return false, d.fail(failDiag)
		}
	}

	if incomplete {
		d.warn(warnAt(diag.IncompleteProof, theorem, theorem.Text, "proof of "+theorem.Text+" is incomplete"))
		return false, true
	}

	return d.checkFinalStack(theorem, assertion, stack)
}

// runCompressedProof handles the "label $= ( label label ... ) LETTERS $."
// form.
func (d *Driver) runCompressedProof(theorem token.Token, assertion *ast.Assertion) (verified, ok bool) {
	d.tokens.next() // the "("

	var refs []token.Token

	for {
		tok, has := d.tokens.next()
		if !has {
			return false, d.fail(d.errEOF(diag.ProofStructure, theorem.Text, "unterminated compressed proof label list for "+theorem.Text))
		}

		if tok.Text == ")" {
			break
		}

		if !tok.IsLabel() {
			return false, d.fail(errAt(diag.ProofStructure, tok, tok.Text, tok.Text+" is not a valid proof step label"))
		}

		if tok.Text == theorem.Text {
			return false, d.fail(errAt(diag.ProofStructure, tok, tok.Text, tok.Text+" refers to itself"))
		}

		for _, m := range assertion.Mandatory {
			if tok.Text == m {
				return false, d.fail(errAt(diag.ProofStructure, tok, tok.Text, tok.Text+" is a mandatory hypothesis of "+theorem.Text+" and must not appear in the proof's label list"))
			}
		}

		if !d.st.IsActiveHypothesis(tok.Text) {
			if _, ok := d.st.Assertion(tok.Text); !ok {
				return false, d.fail(errAt(diag.ProofStructure, tok, tok.Text, tok.Text+" does not name an active hypothesis or a previously proved assertion"))
			}
		}

		refs = append(refs, tok)
	}

	steps, incomplete, decodeOK := d.decodeCompressedDigits(theorem)
	if !decodeOK {
		return false, false
	}

	nMand := len(assertion.Mandatory)
	nRefs := len(refs)

	var stack []ast.Expression
	var saved []ast.Expression

	for _, step := range steps {
		n := step.number

		if d.cfg.MaxCompressedIndex > 0 && uint(n) > d.cfg.MaxCompressedIndex {
			return false, d.fail(errAt(diag.ProofStructure, theorem, theorem.Text, "compressed proof step index exceeds the configured maximum"))
		}

		switch {
		case n >= 1 && n <= nMand:
			label := assertion.Mandatory[n-1]
			var failDiag diag.Diagnostic
			var ok2 bool
			stack, ok2, failDiag = d.applyStep(theorem, label, stack)
			if !ok2 {
				return false, d.fail(failDiag)
			}
		case n > nMand && n <= nMand+nRefs:
			ref := refs[n-nMand-1]
			var failDiag diag.Diagnostic
			var ok2 bool
			stack, ok2, failDiag = d.applyStep(ref, ref.Text, stack)
			if !ok2 {
				return false, d.fail(failDiag)
			}
		case n > nMand+nRefs && n <= nMand+nRefs+len(saved):
			idx := n - nMand - nRefs - 1
			stack = append(stack, saved[idx].Clone())
		default:
			return false, d.fail(errAt(diag.ProofStructure, theorem, theorem.Text, "compressed proof step index out of range"))
		}

		if step.save {
			if len(stack) == 0 {
				return false, d.fail(errAt(diag.ProofStructure, theorem, theorem.Text, "Z save marker with an empty stack"))
			}

			saved = append(saved, stack[len(stack)-1].Clone())
		}
	}

	if incomplete {
		d.warn(warnAt(diag.IncompleteProof, theorem, theorem.Text, "proof of "+theorem.Text+" is incomplete"))
		return false, true
	}

	return d.checkFinalStack(theorem, assertion, stack)
}

// checkFinalStack validates the proof's final state: exactly one
// expression on the stack, matching the theorem's declared expression.
// Config.StrictFinalCheck controls whether a content mismatch is a hard
// error or only a warning. See DESIGN.md.
func (d *Driver) checkFinalStack(theorem token.Token, assertion *ast.Assertion, stack []ast.Expression) (verified, ok bool) {
	if len(stack) != 1 {
		return false, d.fail(errAt(diag.ProofSemantics, theorem, theorem.Text, "proof of "+theorem.Text+" does not leave exactly one expression on the stack"))
	}

	if stack[0].Equal(assertion.Expr) {
		return true, true
	}

	if d.cfg.StrictFinalCheck {
		return false, d.fail(errAt(diag.ProofSemantics, theorem, theorem.Text, "proof of "+theorem.Text+" does not prove its declared expression"))
	}

	d.warn(warnAt(diag.ProofSemantics, theorem, theorem.Text, "proof of "+theorem.Text+" does not prove its declared expression"))

	return false, true
}

// applyStep executes one proof step referring to label (a hypothesis or
// a previously proved assertion), returning the updated stack.
func (d *Driver) applyStep(tok token.Token, label string, stack []ast.Expression) ([]ast.Expression, bool, diag.Diagnostic) {
	if hyp, ok := d.st.Hypothesis(label); ok {
		if !d.st.IsActiveHypothesis(label) {
			return stack, false, errAt(diag.ProofStructure, tok, label, label+" is not an active hypothesis")
		}

		return append(stack, hyp.Expression().Clone()), true, diag.Diagnostic{}
	}

	assertion, ok := d.st.Assertion(label)
	if !ok {
		return stack, false, errAt(diag.ProofStructure, tok, label, label+" does not name an active hypothesis or a previously proved assertion")
	}

	return d.applyAssertionRef(tok, assertion, stack)
}
