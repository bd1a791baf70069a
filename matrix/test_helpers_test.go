// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Keep all data finite and well-formed unless a test says otherwise.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cramer/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through their At-based copy path.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mul returns a*b for square *Dense operands of equal size (test-only helper).
func mul(t *testing.T, a, b *matrix.Dense) [][]float64 {
	t.Helper()
	n := a.Rows()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			var acc float64
			for k := 0; k < n; k++ {
				av, err := a.At(i, k)
				require.NoError(t, err)
				bv, err := b.At(k, j)
				require.NoError(t, err)
				acc += av * bv
			}
			out[i][j] = acc
		}
	}

	return out
}
