package verify

import (
	"github.com/pkeir/ctcheckmm/pkg/mm/diag"
	"github.com/pkeir/ctcheckmm/pkg/mm/token"
	"github.com/pkeir/ctcheckmm/pkg/source"
)

// Result is a verification session's outcome: every diagnostic raised
// (errors and warnings, in the order encountered), and a tally of how
// many theorems fully verified versus were merely accepted with a
// warning (an incomplete "?" proof, or, with Config.StrictFinalCheck
// false, a final-expression mismatch).
type Result struct {
	Diagnostics  []diag.Diagnostic
	VerifiedOK   int
	VerifiedWarn int
}

// OK reports whether the database verified clean: no hard error was
// raised. A database can be OK with warnings present.
func (r Result) OK() bool { return !diag.HasErrors(r.Diagnostics) }

// Session runs verification with a fixed Config across one or more
// databases sharing nothing between runs: each call to Verify or
// VerifyAll starts from an empty symbol table.
type Session struct {
	cfg Config
}

// NewSession constructs a Session that will verify with cfg.
func NewSession(cfg Config) *Session {
	return &Session{cfg: cfg}
}

// Verify tokenizes and checks a single root source (plus whatever it
// "$[ $]"-includes, per resolver) and returns the resulting Result. This
// is the whole-database entry point: there is no notion of verifying
// just one theorem in isolation, since later statements may depend on
// earlier ones.
func (s *Session) Verify(rootName string, initialText []byte, resolver token.FileResolver) Result {
	if !s.cfg.AllowIncludes {
		if initialText == nil {
			contents, ok := resolver.Resolve(rootName)
			if !ok {
				return Result{Diagnostics: []diag.Diagnostic{lexErrToDiagnostic(&token.UnresolvedFileError{Name: rootName})}}
			}

			initialText = contents
		}

		resolver = token.NoIncludeResolver{}
	}

	included := make(map[string]struct{})

	toks, err := token.Tokenize(rootName, initialText, resolver, included)
	if err != nil {
		return Result{Diagnostics: []diag.Diagnostic{lexErrToDiagnostic(err)}}
	}

	d := newDriver(toks, s.cfg)
	d.run()

	return Result{
		Diagnostics:  d.diags,
		VerifiedOK:   d.verifiedOK,
		VerifiedWarn: d.verifiedWarn,
	}
}

// VerifyAll is an alias for Verify: the driver already checks every
// statement in the database and keeps going past warnings, so "verify
// one theorem" and "verify the whole database" are the same operation
// here. There is no partial-database entry point.
func (s *Session) VerifyAll(rootName string, initialText []byte, resolver token.FileResolver) Result {
	return s.Verify(rootName, initialText, resolver)
}

func lexErrToDiagnostic(err error) diag.Diagnostic {
	if se, ok := err.(*source.SyntaxError); ok {
		return diag.New(diag.Lexical, "", se.Message(), se)
	}

	return diag.New(diag.Lexical, "", err.Error(), nil)
}
