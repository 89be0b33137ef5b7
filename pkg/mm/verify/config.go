// Package verify implements the statement parser, assertion builder, and
// proof-checking engine: the driver that ties pkg/mm/token and
// pkg/mm/symtab together into a full Metamath verification session.
package verify

// Config holds the knobs a verification session runs with: small,
// explicit, defaulting to the strict/correct behavior.
type Config struct {
	// StrictFinalCheck, when true (the default), treats a proof whose
	// final stack expression differs from the theorem's declared
	// expression as a hard error. Setting it false reproduces the
	// reference verifier's weaker behavior of printing a diagnostic but
	// still accepting the proof. See DESIGN.md's discussion of the
	// final-expression-mismatch open question.
	StrictFinalCheck bool
	// AllowIncludes, when false, causes the driver to treat "$[" as a
	// hard error immediately rather than even attempting to resolve it.
	// Equivalent to injecting token.NoIncludeResolver, but selectable
	// without changing the resolver; when no initial text is given, the
	// root database itself is still read through the supplied resolver.
	AllowIncludes bool
	// MaxCompressedIndex bounds how large a decoded compressed-proof
	// index may be before it is rejected as an overflow, independent of
	// the machine's native integer width. Zero means no extra bound
	// beyond what fits in a native int.
	MaxCompressedIndex uint
}

// DefaultConfig returns the configuration a plain "verify this database"
// invocation should use.
func DefaultConfig() Config {
	return Config{
		StrictFinalCheck: true,
		AllowIncludes:    true,
	}
}
