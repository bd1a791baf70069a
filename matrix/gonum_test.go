// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cramer/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestDetMatchesGonum cross-checks the LUP determinant against gonum on
// seeded random matrices of every size the solvers accept.
func TestDetMatchesGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 10; n++ {
		for trial := 0; trial < 5; trial++ {
			data := make([]float64, n*n)
			rows := make([][]float64, n)
			for i := 0; i < n; i++ {
				rows[i] = data[i*n : (i+1)*n]
				for j := 0; j < n; j++ {
					rows[i][j] = rng.Float64()*20 - 10
				}
			}

			got, err := matrix.Det(mustDense(t, rows))
			require.NoError(t, err)

			want := mat.Det(mat.NewDense(n, n, data))
			require.InDeltaf(t, want, got, 1e-9*math.Max(1, math.Abs(want)), "n=%d trial=%d", n, trial)
		}
	}
}
