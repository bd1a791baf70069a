// SPDX-License-Identifier: MIT

// Package matrix provides the float64 linear-algebra kernels behind the
// numeric Cramer's Rule solver.
//
// The matrix package provides:
//
//   - Dense, a row-major implementation of the Matrix interface with
//     bounds-checked At/Set and deep Clone.
//   - Central validators (nil, square, vector length, finiteness) that return
//     plain sentinels so callers can match them with errors.Is.
//   - LUP, a Doolittle factorization with partial (row) pivoting, and Det,
//     the determinant derived from it.
//   - WithColumn and MatVec, the column substitution and product used by
//     Cramer's Rule and by residual checks.
//
// Matrices here are small (the solver domain tops out at 10×10); every kernel
// favors deterministic loop order over blocking or parallelism.
//
// See example_test.go for usage.
package matrix
