// SPDX-License-Identifier: MIT
package cramer_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cramer/cramer"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomDominant returns an n×n integer matrix with a strictly dominant
// diagonal (hence non-singular) and an integer constant vector.
func randomDominant(rng *rand.Rand, n int) ([][]float64, []float64) {
	coeff := make([][]float64, n)
	for i := range coeff {
		coeff[i] = make([]float64, n)
		sum := 0.0
		for j := range coeff[i] {
			if i == j {
				continue
			}
			v := float64(rng.Intn(19) - 9)
			coeff[i][j] = v
			if v < 0 {
				v = -v
			}
			sum += v
		}
		coeff[i][i] = sum + float64(1+rng.Intn(5))
	}
	consts := make([]float64, n)
	for i := range consts {
		consts[i] = float64(rng.Intn(41) - 20)
	}

	return coeff, consts
}

// gonumSolve solves coeff·x = consts with gonum's LU solver.
func gonumSolve(t *testing.T, coeff [][]float64, consts []float64) []float64 {
	t.Helper()
	n := len(coeff)
	A := mat.NewDense(n, n, nil)
	for i, row := range coeff {
		A.SetRow(i, row)
	}
	var x mat.VecDense
	require.NoError(t, x.SolveVec(A, mat.NewVecDense(n, append([]float64(nil), consts...))))

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out
}

// TestSolversMatchGonum compares both variants with gonum on seeded random
// well-conditioned systems.
func TestSolversMatchGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	exact, numeric := cramer.NewExact(), cramer.NewNumeric()
	for n := 2; n <= 6; n++ {
		for trial := 0; trial < 3; trial++ {
			coeff, consts := randomDominant(rng, n)
			want := gonumSolve(t, coeff, consts)

			num := numeric.Solve(coeff, consts)
			require.True(t, num.Solved(), num.Diagnostic)
			require.InDeltaSlicef(t, want, num.Solution, 1e-6, "numeric n=%d trial=%d", n, trial)

			ex := exact.Solve(coeff, consts)
			require.True(t, ex.Solved(), ex.Diagnostic)
			got := make([]float64, n)
			for i, r := range ex.Solution {
				got[i] = r.Float64()
			}
			require.InDeltaSlicef(t, want, got, 1e-5, "exact n=%d trial=%d", n, trial)
		}
	}
}
