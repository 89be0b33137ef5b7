package verify

import (
	"github.com/pkeir/ctcheckmm/pkg/mm/ast"
	"github.com/pkeir/ctcheckmm/pkg/mm/symtab"
)

// BuildAssertion turns a freshly parsed "$a"/"$p" expression into an
// Assertion: its mandatory hypotheses, in declaration order, and its
// mandatory disjoint-variable restrictions, projected down from every
// "$d" group active in scope.
//
// A hypothesis is mandatory if it is essential ("$e"), or if it is
// floating ("$f") and its variable occurs in the assertion's expression
// or in some active essential hypothesis's expression. This lives here
// rather than in pkg/mm/ast because it walks the symtab scope stack
// directly; pkg/mm/ast stays free of any symtab dependency.
func BuildAssertion(st *symtab.SymbolTable, label string, expr ast.Expression) *ast.Assertion {
	mandVars := make(map[string]struct{})
	addVars(mandVars, expr)

	scopes := st.Scopes()

	for _, sc := range scopes {
		for _, hypLabel := range sc.ActiveHypotheses() {
			hyp, ok := st.Hypothesis(hypLabel)
			if !ok || hyp.IsFloating() {
				continue
			}

			addVars(mandVars, hyp.Expression())
		}
	}

	var mandatory []string

	for _, sc := range scopes {
		for _, hypLabel := range sc.ActiveHypotheses() {
			hyp, ok := st.Hypothesis(hypLabel)
			if !ok {
				continue
			}

			if f, isFloat := hyp.(ast.Floating); isFloat {
				if _, used := mandVars[f.Variable]; !used {
					continue
				}
			}

			mandatory = append(mandatory, hypLabel)
		}
	}

	var disjoint []ast.DisjointPair
	seen := make(map[ast.DisjointPair]struct{})

	for _, sc := range scopes {
		for _, group := range sc.DisjointGroups(st.VariableName) {
			for i := 0; i < len(group); i++ {
				for j := i + 1; j < len(group); j++ {
					a, b := group[i], group[j]
					if _, aUsed := mandVars[a]; !aUsed {
						continue
					}
					if _, bUsed := mandVars[b]; !bUsed {
						continue
					}

					pair := ast.NewDisjointPair(a, b)
					if _, dup := seen[pair]; dup {
						continue
					}

					seen[pair] = struct{}{}
					disjoint = append(disjoint, pair)
				}
			}
		}
	}

	return &ast.Assertion{
		Label:        label,
		Mandatory:    mandatory,
		DisjointVars: disjoint,
		Expr:         expr,
	}
}

func addVars(set map[string]struct{}, expr ast.Expression) {
	for _, sym := range expr {
		set[sym] = struct{}{}
	}
}
