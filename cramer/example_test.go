package cramer_test

import (
	"fmt"

	"github.com/katalvlaran/cramer/cramer"
)

// ExampleExactSolver_Solve solves a 2×2 system exactly.
func ExampleExactSolver_Solve() {
	res := cramer.NewExact().Solve([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
	fmt.Println(res.Solution)
	// Output:
	// [4/5 7/5]
}

// ExampleNumericSolver_Solve shows a diagnostic for a singular system.
func ExampleNumericSolver_Solve() {
	res := cramer.NewNumeric().Solve([][]float64{{1, 1}, {1, 1}}, []float64{2, 3})
	if !res.Solved() {
		fmt.Println(res.Diagnostic)
	}
	// Output:
	// No unique solution exists (determinant is zero).
}
