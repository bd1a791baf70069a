// SPDX-License-Identifier: MIT

// Package cofactor computes exact determinants by Laplace (cofactor)
// expansion along the first row.
//
// What & Why:
//
//	The exact Cramer's Rule path must never round, so determinants are
//	evaluated over rational.Rational with the textbook recursion
//
//	  det(A) = Σ_c (−1)^c · A[0][c] · det(minor(0, c))
//
//	instead of an LU factorization, whose divisions would force either
//	rounding or rational pivots with far larger intermediate growth.
//
// Views instead of copies:
//
//	A minor is described by the first row still in play plus the list of
//	retained column indices; entries are read through a Grid, so neither
//	minors nor column-substituted matrices (Cramer's Aᵢ) are materialized.
//
// Complexity:
//
//	Time O(n!) big-rational multiplications (zero entries prune whole
//	subtrees), Space O(n²) for the column index lists on the recursion stack.
//	The solver domain stops at n = 10.
package cofactor
