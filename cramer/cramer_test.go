// SPDX-License-Identifier: MIT
package cramer_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/cramer/cramer"
	"github.com/katalvlaran/cramer/i18n"
	"github.com/katalvlaran/cramer/rational"
	"github.com/stretchr/testify/require"
)

// solveBoth runs the same system through both variants behind the shared interface.
func solveBoth(coeff [][]float64, consts []float64) (cramer.Result[rational.Rational], cramer.Result[float64]) {
	var exact cramer.Solver[rational.Rational] = cramer.NewExact()
	var numeric cramer.Solver[float64] = cramer.NewNumeric()

	return exact.Solve(coeff, consts), numeric.Solve(coeff, consts)
}

// TestVariantsAgree checks the two paths within 1e-4 on well-conditioned systems.
func TestVariantsAgree(t *testing.T) {
	t.Parallel()

	systems := []struct {
		coeff  [][]float64
		consts []float64
	}{
		{[][]float64{{2, 1}, {1, 3}}, []float64{3, 5}},
		{[][]float64{{4, -2, 1}, {3, 6, -4}, {2, 1, 8}}, []float64{12, -25, 32}},
		{[][]float64{{1.5, 0.25, 0}, {0.75, 2, 0.5}, {0, 0.1, 3}}, []float64{1, 2, 3}},
		{[][]float64{{10, 2, 3, 1}, {2, 9, 1, 0}, {3, 1, 8, 2}, {1, 0, 2, 7}}, []float64{1, 2, 3, 4}},
	}

	for _, sys := range systems {
		exact, numeric := solveBoth(sys.coeff, sys.consts)
		require.True(t, exact.Solved(), exact.Diagnostic)
		require.True(t, numeric.Solved(), numeric.Diagnostic)
		require.Len(t, numeric.Solution, len(exact.Solution))
		for i := range exact.Solution {
			require.InDelta(t, exact.Solution[i].Float64(), numeric.Solution[i], 1e-4)
		}
	}
}

// TestVariantsAgreeOnSingular checks both paths report the same class of failure.
func TestVariantsAgreeOnSingular(t *testing.T) {
	t.Parallel()

	exact, numeric := solveBoth([][]float64{{1, 1}, {1, 1}}, []float64{2, 3})
	require.ErrorIs(t, exact.Err, cramer.ErrSingular)
	require.ErrorIs(t, numeric.Err, cramer.ErrSingular)
	require.NotEqual(t, exact.Diagnostic, numeric.Diagnostic)
}

// TestConcurrentSolves exercises shared solvers from several goroutines.
func TestConcurrentSolves(t *testing.T) {
	t.Parallel()

	exact := cramer.NewExact()
	numeric := cramer.NewNumeric()
	coeff := [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}
	consts := []float64{1, 0, 1}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				if r := exact.Solve(coeff, consts); !r.Solved() || !r.Solution[1].Equal(rational.One) {
					errs <- "exact: " + r.Diagnostic
					return
				}
				if r := numeric.Solve(coeff, consts); !r.Solved() || r.Solution[1] != 1 {
					errs <- "numeric: " + r.Diagnostic
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

// TestOptionPanics ensures nonsensical options fail fast.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { cramer.WithMaxDenominator(0) })
	require.Panics(t, func() { cramer.WithTolerance(-1) })
	require.Panics(t, func() { cramer.WithDecimals(16) })
	require.Panics(t, func() { cramer.WithDecimals(-1) })
	require.Panics(t, func() { cramer.WithCatalog(nil) })
	require.NotPanics(t, func() { cramer.NewExact(nil, cramer.WithCatalog(i18n.Default())) })
}
