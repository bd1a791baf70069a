// SPDX-License-Identifier: MIT

// Package cramer solves square linear systems A·x = B with Cramer's Rule.
//
// 🚀 What is Cramer's Rule?
//
//	For a square A with det(A) ≠ 0, every unknown is a ratio of two
//	determinants: x_i = det(A_i) / det(A), where A_i is A with column i
//	replaced by B.
//
// ✨ Two solver variants, chosen explicitly by the caller:
//
//   - ExactSolver: converts float inputs to small fractions, evaluates
//     determinants by exact cofactor expansion, returns rational.Rational.
//   - NumericSolver: evaluates determinants with pivoted LU in float64,
//     treats |det(A)| ≤ tolerance as singular, rounds to 6 decimals.
//
// Both implement Solver[T] and never return a Go error or panic on user
// input: every outcome is a Result holding either a Solution or a localized
// Diagnostic string (plus a sentinel in Result.Err for errors.Is).
//
// ⚙️ Usage:
//
//	res := cramer.NewExact().Solve(
//	  [][]float64{{2, 1}, {1, 3}},
//	  []float64{3, 5},
//	)
//	if !res.Solved() {
//	  fmt.Println(res.Diagnostic)
//	  return
//	}
//	fmt.Println(res.Solution) // [4/5 7/5]
//
// Performance:
//
//   - Exact:   O(n · n!) rational multiplications (n+1 cofactor expansions).
//   - Numeric: O(n⁴) (n+1 LU factorizations).
//
// Both are comfortably interactive for the n ≤ 10 the front ends accept.
package cramer
