// Package diag collects the diagnostics a verification session reports:
// every hard error and warning it can raise, anchored to the token span
// that provoked it.
package diag

import (
	"fmt"
	"strings"

	"github.com/pkeir/ctcheckmm/pkg/source"
)

// Severity classifies a Diagnostic as a hard failure or an accepted
// warning (an incomplete "?" proof, or a final-expression mismatch
// accepted when the verifier's strict final check is turned off).
type Severity int

const (
	// Error diagnostics abort verification of the enclosing database.
	Error Severity = iota
	// Warning diagnostics are accepted; verification continues.
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}

	return "error"
}

// Kind names the category of a Diagnostic.
type Kind string

// Error/warning kinds a verification session can raise.
const (
	Lexical         Kind = "lexical"
	Declaration     Kind = "declaration"
	Scope           Kind = "scope"
	ExpressionKind  Kind = "expression"
	ProofStructure  Kind = "proof-structure"
	ProofSemantics  Kind = "proof-semantics"
	IncompleteProof Kind = "incomplete-proof"
)

// Diagnostic is a single reported problem: a kind, a severity, the label
// or token it names, and the span of source it was raised against.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	// Label or token name this diagnostic concerns, if any.
	Subject string
	Message string
	Span    *source.SyntaxError
}

// New constructs an error-severity diagnostic.
func New(kind Kind, subject, message string, span *source.SyntaxError) Diagnostic {
	return Diagnostic{kind, Error, subject, message, span}
}

// NewWarning constructs a warning-severity diagnostic.
func NewWarning(kind Kind, subject, message string, span *source.SyntaxError) Diagnostic {
	return Diagnostic{kind, Warning, subject, message, span}
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped as a Go error.
func (d Diagnostic) Error() string {
	if d.Span != nil {
		return fmt.Sprintf("%s: %s: %s", d.Severity, d.Span.Error(), d.Message)
	}

	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// HasErrors reports whether any diagnostic in the slice is error severity.
func HasErrors(ds []Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == Error {
			return true
		}
	}

	return false
}

// Format renders a diagnostic with a highlighted source line, in the
// manner of a compiler's console output.
func Format(d Diagnostic) string {
	if d.Span == nil {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}

	span := d.Span.Span()
	line := d.Span.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	length := min(line.Length()-lineOffset, span.Length())

	var b strings.Builder

	fmt.Fprintf(&b, "%s:%d: %s: %s\n\n", d.Span.SourceFile().Filename(), line.Number(), d.Severity, d.Message)
	fmt.Fprintln(&b, line.String())
	fmt.Fprint(&b, strings.Repeat(" ", max(0, lineOffset)))
	fmt.Fprintln(&b, strings.Repeat("^", max(1, length)))

	return b.String()
}
