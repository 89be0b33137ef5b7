package ast

// DisjointPair is a canonicalized unordered pair of variables (Low <
// High, under string comparison) carried as a mandatory disjoint-variable
// restriction of some Assertion.
type DisjointPair struct {
	Low, High string
}

// NewDisjointPair canonicalizes two distinct variable names into a pair
// with Low < High, so that sets of pairs are comparable regardless of the
// order their variables were discovered in.
func NewDisjointPair(a, b string) DisjointPair {
	if a <= b {
		return DisjointPair{a, b}
	}

	return DisjointPair{b, a}
}

// Assertion is an axiom ("$a") or theorem ("$p") head: its mandatory
// hypotheses (in canonical declaration order, see BuildAssertion),
// its mandatory disjoint-variable restrictions, and its expression. Any
// proof text is consumed at parse time and never stored here.
type Assertion struct {
	Label        string
	Mandatory    []string // ordered hypothesis labels
	DisjointVars []DisjointPair
	Expr         Expression
}

// HasDisjoint reports whether (x, y), in either order, is one of this
// assertion's mandatory disjoint-variable restrictions.
func (a *Assertion) HasDisjoint(x, y string) bool {
	pair := NewDisjointPair(x, y)

	for _, p := range a.DisjointVars {
		if p == pair {
			return true
		}
	}

	return false
}
