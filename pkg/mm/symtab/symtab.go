// Package symtab implements the scoped symbol table a Metamath
// verification session consults while parsing: declared constants and
// variables, the hypothesis and assertion label spaces, and the stack of
// nested scopes opened by "${ ... $}".
package symtab

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pkeir/ctcheckmm/pkg/mm/ast"
)

// SymbolTable is a Metamath database's single source of truth for
// declarations, labels, and active scope state. Its zero value is not
// usable; construct one with New.
type SymbolTable struct {
	constants map[string]struct{}
	// variables is monotonic: once a symbol is declared a variable, it
	// stays in this set for the life of the session, even after the
	// scope that activated it closes.
	variables map[string]struct{}

	varIDs *interner
	hypIDs *interner

	hypotheses map[string]ast.Hypothesis
	assertions map[string]*ast.Assertion

	scopes []*Scope
}

// New constructs a symbol table with a single, outermost scope active.
func New() *SymbolTable {
	st := &SymbolTable{
		constants:  make(map[string]struct{}),
		variables:  make(map[string]struct{}),
		varIDs:     newInterner(),
		hypIDs:     newInterner(),
		hypotheses: make(map[string]ast.Hypothesis),
		assertions: make(map[string]*ast.Assertion),
	}
	st.scopes = []*Scope{newScope()}

	return st
}

// Depth returns the number of scopes currently on the stack; 1 means only
// the outer scope is active.
func (st *SymbolTable) Depth() int { return len(st.scopes) }

// PushScope opens a new nested scope.
func (st *SymbolTable) PushScope() {
	st.scopes = append(st.scopes, newScope())
}

// PopScope closes the innermost scope. It returns false if only the outer
// scope remains, which the caller reports as "$} without ${".
func (st *SymbolTable) PopScope() bool {
	if len(st.scopes) <= 1 {
		return false
	}

	st.scopes = st.scopes[:len(st.scopes)-1]

	return true
}

func (st *SymbolTable) top() *Scope { return st.scopes[len(st.scopes)-1] }

// IsConstant reports whether sym has been declared a constant.
func (st *SymbolTable) IsConstant(sym string) bool {
	_, ok := st.constants[sym]
	return ok
}

// IsVariable reports whether sym has ever been declared a variable,
// regardless of whether it is currently active in any open scope.
func (st *SymbolTable) IsVariable(sym string) bool {
	_, ok := st.variables[sym]
	return ok
}

// IsLabelUsed reports whether label already names a hypothesis or an
// assertion: labels are single-assignment across both spaces.
func (st *SymbolTable) IsLabelUsed(label string) bool {
	if _, ok := st.hypotheses[label]; ok {
		return true
	}

	_, ok := st.assertions[label]

	return ok
}

// DeclareConstant registers sym as a constant. The caller is responsible
// for having already checked I4 (only at the outer scope) and for
// rejecting collisions with variables or labels; DeclareConstant itself
// only reports whether sym was already a constant.
func (st *SymbolTable) DeclareConstant(sym string) (alreadyDeclared bool) {
	if _, ok := st.constants[sym]; ok {
		return true
	}

	st.constants[sym] = struct{}{}

	return false
}

// IsActiveVariable reports whether sym is an active variable in any scope
// currently on the stack.
func (st *SymbolTable) IsActiveVariable(sym string) bool {
	id, ok := st.varIDs.lookup(sym)
	if !ok {
		return false
	}

	for _, sc := range st.scopes {
		if sc.activeVars.Test(id) {
			return true
		}
	}

	return false
}

// DeclareVariable activates sym as a variable in the current (innermost)
// scope. It reports whether sym was already active in some open scope, in
// which case the caller rejects the declaration. A variable may be
// reactivated once the scope that previously activated it has closed (see
// DESIGN.md).
func (st *SymbolTable) DeclareVariable(sym string) (alreadyActive bool) {
	if st.IsActiveVariable(sym) {
		return true
	}

	st.variables[sym] = struct{}{}
	id := st.varIDs.intern(sym)
	st.top().activeVars.Set(id)

	return false
}

// IsActiveHypothesis reports whether label names a hypothesis active in
// some scope currently on the stack.
func (st *SymbolTable) IsActiveHypothesis(label string) bool {
	id, ok := st.hypIDs.lookup(label)
	if !ok {
		return false
	}

	for _, sc := range st.scopes {
		if sc.activeHypSet.Test(id) {
			return true
		}
	}

	return false
}

// Hypothesis returns the (monotonic) hypothesis recorded under label.
func (st *SymbolTable) Hypothesis(label string) (ast.Hypothesis, bool) {
	h, ok := st.hypotheses[label]
	return h, ok
}

// Assertion returns the assertion recorded under label.
func (st *SymbolTable) Assertion(label string) (*ast.Assertion, bool) {
	a, ok := st.assertions[label]
	return a, ok
}

// AddHypothesis records a new hypothesis under label (entries here are
// never removed, matching the monotonic "hypotheses" mapping of the data
// model) and marks it active in the current scope.
func (st *SymbolTable) AddHypothesis(label string, hyp ast.Hypothesis) {
	st.hypotheses[label] = hyp

	id := st.hypIDs.intern(label)
	sc := st.top()
	sc.activeHyps = append(sc.activeHyps, label)
	sc.activeHypSet.Set(id)

	if f, ok := hyp.(ast.Floating); ok {
		varID := st.varIDs.intern(f.Variable)
		sc.floatingHypOf[varID] = label
	}
}

// AddAssertion records a newly constructed assertion under label.
func (st *SymbolTable) AddAssertion(a *ast.Assertion) {
	st.assertions[a.Label] = a
}

// LookupActiveFloating returns the label of the active floating
// hypothesis covering variable, if any. By I7 at most one scope on the
// stack can supply one, so the search order (innermost first) does not
// affect the result.
func (st *SymbolTable) LookupActiveFloating(variable string) (string, bool) {
	id, ok := st.varIDs.lookup(variable)
	if !ok {
		return "", false
	}

	for i := len(st.scopes) - 1; i >= 0; i-- {
		if label, ok := st.scopes[i].floatingHypOf[id]; ok {
			return label, true
		}
	}

	return "", false
}

// AddDisjointGroup records a new "$d" group of (already validated,
// distinct, active) variables in the current scope.
func (st *SymbolTable) AddDisjointGroup(vars []string) {
	group := bitset.New(0)
	for _, v := range vars {
		group.Set(st.varIDs.intern(v))
	}

	st.top().disjointGroups = append(st.top().disjointGroups, group)
}

// IsDVR reports whether some active disjoint-variable group on the
// current scope stack contains both v1 and v2.
func (st *SymbolTable) IsDVR(v1, v2 string) bool {
	if v1 == v2 {
		return false
	}

	id1, ok1 := st.varIDs.lookup(v1)
	id2, ok2 := st.varIDs.lookup(v2)

	if !ok1 || !ok2 {
		return false
	}

	for _, sc := range st.scopes {
		for _, group := range sc.disjointGroups {
			if group.Test(id1) && group.Test(id2) {
				return true
			}
		}
	}

	return false
}

// Scopes exposes the current scope stack, outermost first, for the
// assertion builder's traversal. Callers must not mutate the returned
// slice or the Scopes within it.
func (st *SymbolTable) Scopes() []*Scope { return st.scopes }

// ActiveHypotheses returns a scope's ordered, active hypothesis labels.
func (s *Scope) ActiveHypotheses() []string { return s.activeHyps }

// DisjointGroups returns a scope's "$d" groups, each as the set of
// variable names it contains.
func (s *Scope) DisjointGroups(names func(uint) string) [][]string {
	out := make([][]string, len(s.disjointGroups))

	for i, group := range s.disjointGroups {
		var vars []string

		for id, ok := group.NextSet(0); ok; id, ok = group.NextSet(id + 1) {
			vars = append(vars, names(id))
		}

		out[i] = vars
	}

	return out
}

// VariableName exposes the interner's reverse mapping, so BuildAssertion
// can turn the variable ids in a Scope's DisjointGroups back into names.
func (st *SymbolTable) VariableName(id uint) string { return st.varIDs.name(id) }
