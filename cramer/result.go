// SPDX-License-Identifier: MIT

package cramer

import "github.com/katalvlaran/cramer/rational"

// Result is the outcome of one Solve call. Exactly one of Solution and
// Diagnostic is set:
//
//   - solved:   Solution has N values (index i is the i-th unknown), Diagnostic == "", Err == nil.
//   - unsolved: Solution == nil, Diagnostic is a display string, Err wraps ErrShape, ErrSingular or ErrConversion.
type Result[T any] struct {
	Solution   []T
	Diagnostic string
	Err        error
}

// Solved reports whether r carries a Solution.
func (r Result[T]) Solved() bool {
	return r.Err == nil
}

// Solver is the contract shared by both variants.
type Solver[T any] interface {
	Solve(coeff [][]float64, consts []float64) Result[T]
}

// Compile-time checks.
var (
	_ Solver[rational.Rational] = (*ExactSolver)(nil)
	_ Solver[float64]           = (*NumericSolver)(nil)
)

// solved builds a successful Result.
func solved[T any](values []T) Result[T] {
	return Result[T]{Solution: values}
}

// unsolved builds a diagnostic Result.
func unsolved[T any](diagnostic string, err error) Result[T] {
	return Result[T]{Diagnostic: diagnostic, Err: err}
}
