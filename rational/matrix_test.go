// SPDX-License-Identifier: MIT
package rational_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cramer/rational"
	"github.com/stretchr/testify/require"
)

// TestMatrixFromFloats checks per-cell approximation and error positions.
func TestMatrixFromFloats(t *testing.T) {
	t.Parallel()

	m, err := rational.MatrixFromFloats([][]float64{{0.5, 0.25}, {1.0 / 3, 2}}, rational.DefaultMaxDenominator)
	require.NoError(t, err)
	require.Equal(t, "1/2", m[0][0].String())
	require.Equal(t, "1/4", m[0][1].String())
	require.Equal(t, "1/3", m[1][0].String())
	require.Equal(t, "2", m[1][1].String())

	_, err = rational.MatrixFromFloats([][]float64{{1, 2}, {3, math.Inf(1)}}, 10)
	require.ErrorIs(t, err, rational.ErrNonFinite)
	require.Contains(t, err.Error(), "cell (1,1)")

	v, err := rational.VectorFromFloats([]float64{0.2, -4}, 10)
	require.NoError(t, err)
	require.Equal(t, "1/5", v[0].String())
	require.Equal(t, "-4", v[1].String())

	_, err = rational.VectorFromFloats([]float64{math.NaN()}, 10)
	require.ErrorIs(t, err, rational.ErrNonFinite)
}

// TestMulVec checks the exact product against the identity and a ragged row.
func TestMulVec(t *testing.T) {
	t.Parallel()

	x := rational.Vector{rational.MustNew(1, 2), rational.FromInt(3)}
	y, err := rational.Identity(2).MulVec(x)
	require.NoError(t, err)
	require.True(t, y[0].Equal(x[0]))
	require.True(t, y[1].Equal(x[1]))

	_, err = rational.Matrix{{rational.One}}.MulVec(x)
	require.Error(t, err)
}
