// Package ast holds the value types of a Metamath database: expressions,
// hypotheses, and assertions. None of these types know about scoping or
// the token stream that produced them (that lives in pkg/mm/symtab and
// pkg/mm/verify respectively), so they stay plain, comparable data.
package ast

import "slices"

// Expression is an ordered sequence of symbols. By convention the first
// symbol is a typecode (a constant); the rest are constants or variables.
type Expression []string

// Typecode returns the leading constant of this expression.
func (e Expression) Typecode() string {
	if len(e) == 0 {
		return ""
	}

	return e[0]
}

// Equal reports whether two expressions contain exactly the same symbols
// in the same order.
func (e Expression) Equal(other Expression) bool {
	return slices.Equal(e, other)
}

// Clone returns an independent copy of this expression.
func (e Expression) Clone() Expression {
	return slices.Clone(e)
}
