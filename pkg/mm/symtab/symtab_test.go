package symtab

import (
	"testing"

	"github.com/pkeir/ctcheckmm/pkg/mm/ast"
)

func TestSymbolTable_ScopeStack(t *testing.T) {
	st := New()

	if st.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", st.Depth())
	}

	if st.PopScope() {
		t.Fatal("popping the outer scope should fail")
	}

	st.PushScope()

	if st.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", st.Depth())
	}

	if !st.PopScope() {
		t.Fatal("popping an inner scope should succeed")
	}
}

// Like P3 for labels: no variable declared inside a block is active after
// the matching "$}", though it stays in the global variable set.
func TestSymbolTable_ScopeLeavingDeactivatesVariables(t *testing.T) {
	st := New()
	st.DeclareVariable("x")
	st.PushScope()
	st.DeclareVariable("y")

	if !st.IsActiveVariable("x") || !st.IsActiveVariable("y") {
		t.Fatal("both x and y should be active inside the inner scope")
	}

	st.PopScope()

	if !st.IsActiveVariable("x") {
		t.Fatal("x should remain active after leaving the inner scope")
	}

	if st.IsActiveVariable("y") {
		t.Fatal("y should no longer be active after leaving the inner scope")
	}

	if !st.IsVariable("y") {
		t.Fatal("y should remain in the ever-declared global set")
	}
}

func TestSymbolTable_VariableReactivationAfterScopeCloses(t *testing.T) {
	st := New()
	st.PushScope()

	if st.DeclareVariable("x") {
		t.Fatal("first declaration of x should succeed")
	}

	st.PopScope()

	if st.DeclareVariable("x") {
		t.Fatal("x should be reactivatable once its scope has closed")
	}
}

func TestSymbolTable_DeclareVariableWhileActiveFails(t *testing.T) {
	st := New()
	st.DeclareVariable("x")

	if !st.DeclareVariable("x") {
		t.Fatal("redeclaring an already-active variable should report alreadyActive")
	}
}

func TestSymbolTable_FloatingHypothesisLookup(t *testing.T) {
	st := New()
	st.DeclareVariable("x")
	st.AddHypothesis("wx", ast.Floating{Typecode: "wff", Variable: "x"})

	label, ok := st.LookupActiveFloating("x")
	if !ok || label != "wx" {
		t.Fatalf("expected active floating hypothesis wx for x, got %q, %v", label, ok)
	}
}

func TestSymbolTable_DisjointGroups(t *testing.T) {
	st := New()
	st.DeclareVariable("x")
	st.DeclareVariable("y")
	st.DeclareVariable("z")
	st.AddDisjointGroup([]string{"x", "y", "z"})

	if !st.IsDVR("x", "y") || !st.IsDVR("y", "z") || !st.IsDVR("x", "z") {
		t.Fatal("all pairs within a disjoint group should be pairwise disjoint")
	}

	if st.IsDVR("x", "x") {
		t.Fatal("a variable is never disjoint from itself")
	}
}

func TestSymbolTable_ActiveHypothesesOrderPreserved(t *testing.T) {
	st := New()
	st.AddHypothesis("h1", ast.Essential{Expr: ast.Expression{"wff", "a"}})
	st.AddHypothesis("h2", ast.Essential{Expr: ast.Expression{"wff", "b"}})

	got := st.top().ActiveHypotheses()
	if len(got) != 2 || got[0] != "h1" || got[1] != "h2" {
		t.Fatalf("expected [h1 h2] in declaration order, got %v", got)
	}
}
