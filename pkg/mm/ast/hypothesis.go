package ast

// Hypothesis is a tagged variant distinguishing a floating hypothesis
// (a typecode assigned to a variable by "$f") from an essential one (an
// arbitrary antecedent expression introduced by "$e"). This replaces the
// reference verifier's boolean-flag-plus-raw-expression encoding, which
// carries the out-of-band invariant "a floating expression always has
// length 2"; here that invariant is structural instead.
type Hypothesis interface {
	// Expression returns this hypothesis's expression: <typecode,
	// variable> for a Floating hypothesis, or the stated antecedent for
	// an Essential one.
	Expression() Expression
	// IsFloating reports whether this is a floating hypothesis.
	IsFloating() bool
}

// Floating is a hypothesis of the form "typecode variable", introduced by
// a "$f" statement.
type Floating struct {
	Typecode string
	Variable string
}

// Expression implements Hypothesis.
func (f Floating) Expression() Expression { return Expression{f.Typecode, f.Variable} }

// IsFloating implements Hypothesis.
func (f Floating) IsFloating() bool { return true }

// Essential is a hypothesis with an arbitrary antecedent expression,
// introduced by an "$e" statement.
type Essential struct {
	Expr Expression
}

// Expression implements Hypothesis.
func (e Essential) Expression() Expression { return e.Expr }

// IsFloating implements Hypothesis.
func (e Essential) IsFloating() bool { return false }
