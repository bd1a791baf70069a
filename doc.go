// Package cramer is the module root of a Cramer's Rule toolkit for small
// square linear systems A·X = B.
//
// What is here?
//
//	Two solver variants behind one generic contract:
//		• Exact:   rational arithmetic, cofactor expansion, fractions in the result
//		• Numeric: float64, pivoted LU determinant, tolerance-based singularity
//
// Both variants take the same float inputs and never panic or return a Go
// error: every outcome is a Result carrying either the solution or a
// localized diagnostic plus a sentinel for errors.Is.
//
// Under the hood the module is organized into these packages:
//
//	cramer/     ExactSolver, NumericSolver, Result[T], Solver[T], options
//	cofactor/   exact determinant by Laplace expansion over minor views
//	rational/   Rational (math/big), LimitDenominator, Matrix/Vector
//	matrix/     Dense float64 storage, validators, LUP, Det, WithColumn
//	format/     value rendering (integers, \frac, two decimals), labels, LaTeX
//	i18n/       embedded YAML message catalogs (en-US, pt-BR)
//	cmd/cramer  command-line front end (env + flags, opt-in tracing)
//
// Quick example:
//
//	res := cramer.NewExact().Solve([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	// res.Solution → [4/5 7/5]
//
//	num := cramer.NewNumeric().Solve([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	// num.Solution → [0.8 1.4]
//
// Cramer's Rule costs O(n) determinants; the exact path is factorial in n and
// meant for the small systems (n ≤ 10) a person types in by hand.
package cramer
