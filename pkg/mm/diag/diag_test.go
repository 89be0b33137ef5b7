package diag

import (
	"strings"
	"testing"

	"github.com/pkeir/ctcheckmm/pkg/source"
)

func TestHasErrors_AllWarnings(t *testing.T) {
	ds := []Diagnostic{
		NewWarning(IncompleteProof, "foo", "incomplete proof", nil),
		NewWarning(IncompleteProof, "bar", "incomplete proof", nil),
	}

	if HasErrors(ds) {
		t.Fatal("HasErrors should be false when every diagnostic is a warning")
	}
}

func TestHasErrors_OneError(t *testing.T) {
	ds := []Diagnostic{
		NewWarning(IncompleteProof, "foo", "incomplete proof", nil),
		New(Scope, "bar", "$} without ${", nil),
	}

	if !HasErrors(ds) {
		t.Fatal("HasErrors should be true when any diagnostic is error severity")
	}
}

func TestDiagnostic_ErrorWithoutSpan(t *testing.T) {
	d := New(Declaration, "wff", "already declared a variable", nil)

	got := d.Error()
	if !strings.Contains(got, "already declared a variable") {
		t.Fatalf("Error() = %q, want it to contain the message", got)
	}
}

func TestFormat_HighlightsSpan(t *testing.T) {
	f := source.NewFile("db.mm", []byte("$c wff $.\nbad $a wff $.\n"))
	span := f.SyntaxError(source.NewSpan(10, 13), "unknown label")

	d := New(Declaration, "bad", "unknown label", span)

	got := Format(d)
	if !strings.Contains(got, "unknown label") || !strings.Contains(got, "bad $a wff $.") {
		t.Fatalf("Format() = %q, missing message or source line", got)
	}
	if !strings.Contains(got, "^") {
		t.Fatalf("Format() = %q, missing caret underline", got)
	}
}
