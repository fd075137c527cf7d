// Package satif defines the narrow SAT-solver contract the fraig driver
// needs — variable allocation, Tseitin clause emission for the two gate
// shapes it has to reason about, assumption-based queries — and a
// github.com/go-air/gini-backed implementation of it.
package satif

// Var is an opaque handle to a solver variable. The zero value is never
// a valid allocated variable.
type Var int

// Solver is everything the fraig driver needs from a SAT backend. A
// fresh variable is allocated per circuit gate up front; AND/XOR
// clauses are then emitted to define the gates the driver cares about,
// and equivalence between two signals is checked by asserting their
// XOR and asking whether the result is satisfiable.
type Solver interface {
	// NewVar allocates and returns a fresh variable.
	NewVar() Var

	// AddAndClauses asserts out <-> (a^aInv) & (b^bInv) via Tseitin
	// clauses.
	AddAndClauses(out, a Var, aInv bool, b Var, bInv bool)

	// AddXorClauses asserts out <-> (a^aInv) XOR (b^bInv) via Tseitin
	// clauses.
	AddXorClauses(out, a Var, aInv bool, b Var, bInv bool)

	// Assume adds v (or its negation, if value is false) to the set of
	// assumptions used by the next Solve.
	Assume(v Var, value bool)

	// ClearAssumptions drops every assumption added so far.
	ClearAssumptions()

	// Solve returns true if the clause database is satisfiable under
	// the current assumptions.
	Solve() bool
}
