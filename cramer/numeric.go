// SPDX-License-Identifier: MIT

package cramer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cramer/i18n"
	"github.com/katalvlaran/cramer/matrix"
)

// errOverflow marks a determinant that left the float64 range.
var errOverflow = fmt.Errorf("determinant overflows float64: %w", matrix.ErrNaNInf)

// NumericSolver solves systems in float64 with LU-based determinants.
// It holds only immutable options and is safe for concurrent use.
type NumericSolver struct {
	opts Options
}

// NewNumeric returns a NumericSolver configured by opts.
func NewNumeric(opts ...Option) *NumericSolver {
	return &NumericSolver{opts: gatherOptions(opts...)}
}

// Solve applies Cramer's Rule in floating point.
//
// Implementation:
//   - Stage 1: Validate the shape (N×N and length N, N ≥ 1) and finiteness.
//   - Stage 2: detA = matrix.Det(A); |detA| ≤ tolerance → ErrSingular.
//   - Stage 3: For each i, x_i = round(det(A_i) / detA, decimals), where A_i
//     is a working copy of A with column i replaced by consts.
//
// Diagnostics:
//   - ErrShape: shape violation.
//   - ErrConversion: NaN/±Inf input, or a determinant that overflowed.
//   - ErrSingular: |det(A)| ≤ tolerance.
//
// Complexity:
//   - Time O(n⁴), Space O(n²).
func (s *NumericSolver) Solve(coeff [][]float64, consts []float64) Result[float64] {
	if err := matrix.ValidateSystem(coeff, consts); err != nil {
		return unsolved[float64](s.opts.diagnostic(i18n.KeyNonSquare), fmt.Errorf("%w: %w", ErrShape, err))
	}
	A, err := matrix.NewDenseFromRows(coeff)
	if err != nil {
		return unsolved[float64](s.opts.diagnostic(i18n.KeyNonSquare), fmt.Errorf("%w: %w", ErrShape, err))
	}
	if err = matrix.ValidateFinite(A); err != nil {
		return s.conversionFailure(fmt.Errorf("coefficients: %w", err))
	}
	if err = matrix.ValidateFiniteVec(consts); err != nil {
		return s.conversionFailure(fmt.Errorf("constants: %w", err))
	}

	detA, err := matrix.Det(A)
	if err != nil {
		return s.conversionFailure(err)
	}
	if math.IsInf(detA, 0) || math.IsNaN(detA) {
		return s.conversionFailure(errOverflow)
	}
	if math.Abs(detA) <= s.opts.tol {
		return unsolved[float64](s.opts.diagnostic(i18n.KeyNumericSingular), ErrSingular)
	}

	n := A.Rows()
	solution := make([]float64, n)
	var Ai *matrix.Dense
	var detAi float64
	for i := 0; i < n; i++ {
		if Ai, err = matrix.WithColumn(A, i, consts); err != nil {
			return s.conversionFailure(err)
		}
		if detAi, err = matrix.Det(Ai); err != nil {
			return s.conversionFailure(err)
		}
		if math.IsInf(detAi, 0) || math.IsNaN(detAi) {
			return s.conversionFailure(errOverflow)
		}
		solution[i] = roundTo(detAi/detA, s.opts.decimals)
	}

	return solved(solution)
}

// conversionFailure wraps err as an ErrConversion diagnostic.
func (s *NumericSolver) conversionFailure(err error) Result[float64] {
	return unsolved[float64](s.opts.diagnostic(i18n.KeyInvalidInput, err), fmt.Errorf("%w: %w", ErrConversion, err))
}

// roundTo rounds x half away from zero to the given number of decimals.
// Values too large to scale are returned unchanged; −0 becomes +0.
func roundTo(x float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	scaled := x * scale
	if math.IsInf(scaled, 0) {
		return x
	}
	r := math.Round(scaled) / scale
	if r == 0 {
		return 0
	}

	return r
}
