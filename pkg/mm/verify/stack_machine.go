package verify

import (
	"github.com/pkeir/ctcheckmm/pkg/mm/ast"
	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
	"github.com/pkeir/ctcheckmm/pkg/mm/token"
)

// applyAssertionRef is the core "assertion step" of the proof stack
// machine: pop one frame per mandatory hypothesis of assertion, derive
// the substitution their floating hypotheses demand, check every
// essential hypothesis against that substitution, enforce the
// assertion's mandatory disjoint-variable restrictions, and push the
// substituted conclusion.
func (d *Driver) applyAssertionRef(tok token.Token, assertion *ast.Assertion, stack []ast.Expression) ([]ast.Expression, bool, diag.Diagnostic) {
	n := len(assertion.Mandatory)

	if len(stack) < n {
		return stack, false, errAt(diag.ProofSemantics, tok, assertion.Label, "stack underflow applying "+assertion.Label)
	}

	frame := stack[len(stack)-n:]
	stack = stack[:len(stack)-n]

	sigma := make(ast.Substitution)

	for i, hypLabel := range assertion.Mandatory {
		hyp, ok := d.st.Hypothesis(hypLabel)
		if !ok {
			return stack, false, errAt(diag.ProofSemantics, tok, hypLabel, "mandatory hypothesis "+hypLabel+" of "+assertion.Label+" no longer exists")
		}

		item := frame[i]

		if f, isFloat := hyp.(ast.Floating); isFloat {
			if item.Typecode() != f.Typecode {
				return stack, false, errAt(diag.ProofSemantics, tok, assertion.Label,
					"step supplying "+f.Variable+" has typecode "+item.Typecode()+", expected "+f.Typecode)
			}

			sigma[f.Variable] = item[1:].Clone()

			continue
		}

		essential := hyp.(ast.Essential)
		want := ast.Substitute(essential.Expr, sigma)

		if !item.Equal(want) {
			return stack, false, errAt(diag.ProofSemantics, tok, assertion.Label, "step does not match essential hypothesis "+hypLabel+" of "+assertion.Label)
		}
	}

	for _, pair := range assertion.DisjointVars {
		low, lowOK := sigma[pair.Low]
		high, highOK := sigma[pair.High]

		if !lowOK || !highOK {
			continue
		}

		if !d.disjointSubstitutions(low, high) {
			return stack, false, errAt(diag.ProofSemantics, tok, assertion.Label,
				"substitution for "+pair.Low+" and "+pair.High+" violates a disjoint-variable restriction of "+assertion.Label)
		}
	}

	return append(stack, ast.Substitute(assertion.Expr, sigma)), true, diag.Diagnostic{}
}

// disjointSubstitutions reports whether every variable occurring in low
// is disjoint (per the active "$d" statements) from every variable
// occurring in high.
func (d *Driver) disjointSubstitutions(low, high ast.Expression) bool {
	for _, x := range low {
		if !d.st.IsVariable(x) {
			continue
		}

		for _, y := range high {
			if !d.st.IsVariable(y) {
				continue
			}

			if x == y || !d.st.IsDVR(x, y) {
				return false
			}
		}
	}

	return true
}
