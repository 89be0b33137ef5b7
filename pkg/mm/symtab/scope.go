package symtab

import "github.com/bits-and-blooms/bitset"

// Scope is one level of Metamath's nested "${ ... $}" block structure: the
// variables it activated, the hypotheses it introduced (in declaration
// order, which BuildAssertion's outer-to-inner traversal depends on), the
// disjoint-variable groups it declared, and which variable each active
// floating hypothesis covers.
type Scope struct {
	// activeVars is a bitset over variable ids, for O(1)
	// is_active_variable queries.
	activeVars *bitset.BitSet
	// activeHyps is the ordered list of hypothesis labels declared in
	// this scope. Order matters for BuildAssertion's traversal.
	activeHyps []string
	// activeHypSet mirrors activeHyps as a bitset over hypothesis ids,
	// for O(1) is_active_hypothesis queries.
	activeHypSet *bitset.BitSet
	// disjointGroups are the "$d" groups declared in this scope, each a
	// bitset over variable ids.
	disjointGroups []*bitset.BitSet
	// floatingHypOf maps a variable id to the label of the "$f"
	// hypothesis that covers it in this scope.
	floatingHypOf map[uint]string
}

func newScope() *Scope {
	return &Scope{
		activeVars:    bitset.New(0),
		activeHypSet:  bitset.New(0),
		floatingHypOf: make(map[uint]string),
	}
}
