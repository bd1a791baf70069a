// SPDX-License-Identifier: MIT

package cramer

import (
	"fmt"

	"github.com/katalvlaran/cramer/cofactor"
	"github.com/katalvlaran/cramer/i18n"
	"github.com/katalvlaran/cramer/matrix"
	"github.com/katalvlaran/cramer/rational"
)

// ExactSolver solves systems in exact rational arithmetic.
// It holds only immutable options and is safe for concurrent use.
type ExactSolver struct {
	opts Options
}

// NewExact returns an ExactSolver configured by opts.
func NewExact(opts ...Option) *ExactSolver {
	return &ExactSolver{opts: gatherOptions(opts...)}
}

// Solve converts coeff and consts to rationals and applies Cramer's Rule.
//
// Implementation:
//   - Stage 1: Validate the shape (N×N and length N, N ≥ 1).
//   - Stage 2: Approximate every cell with denominators ≤ the configured bound.
//   - Stage 3: Delegate to SolveRational.
//
// Diagnostics:
//   - ErrShape: shape violation.
//   - ErrConversion: NaN/±Inf cell, or any panic recovered while solving.
//   - ErrSingular: det(A) == 0 exactly.
func (s *ExactSolver) Solve(coeff [][]float64, consts []float64) (res Result[rational.Rational]) {
	defer s.recoverInto(&res)

	if err := matrix.ValidateSystem(coeff, consts); err != nil {
		return unsolved[rational.Rational](s.opts.diagnostic(i18n.KeyExactDimensions), fmt.Errorf("%w: %w", ErrShape, err))
	}
	A, err := rational.MatrixFromFloats(coeff, s.opts.maxDen)
	if err != nil {
		return s.conversionFailure(fmt.Errorf("coefficients: %w", err))
	}
	B, err := rational.VectorFromFloats(consts, s.opts.maxDen)
	if err != nil {
		return s.conversionFailure(fmt.Errorf("constants: %w", err))
	}

	return s.SolveRational(A, B)
}

// SolveRational applies Cramer's Rule to an already exact system.
// Entries are used as given; only the solution values are bounded to the
// configured maximum denominator.
//
// Implementation:
//   - Stage 1: Validate the shape.
//   - Stage 2: detA by cofactor expansion; zero → ErrSingular.
//   - Stage 3: For each i, det of A with column i read from B (a view, no copy),
//     x_i = LimitDenominator(det(A_i) / detA).
//
// Complexity:
//   - Time O(n · n!), Space O(n²).
func (s *ExactSolver) SolveRational(A rational.Matrix, B rational.Vector) (res Result[rational.Rational]) {
	defer s.recoverInto(&res)

	if err := validateRationalSystem(A, B); err != nil {
		return unsolved[rational.Rational](s.opts.diagnostic(i18n.KeyExactDimensions), fmt.Errorf("%w: %w", ErrShape, err))
	}

	grid := cofactor.Of(A)
	detA := cofactor.DetGrid(grid)
	if detA.IsZero() {
		return unsolved[rational.Rational](s.opts.diagnostic(i18n.KeyExactSingular), ErrSingular)
	}

	n := len(A)
	solution := make([]rational.Rational, n)
	for i := 0; i < n; i++ {
		detAi := cofactor.DetGrid(cofactor.WithColumn(grid, i, B))
		x, err := detAi.Quo(detA)
		if err != nil {
			return s.conversionFailure(err)
		}
		if solution[i], err = x.LimitDenominator(s.opts.maxDen); err != nil {
			return s.conversionFailure(err)
		}
	}

	return solved(solution)
}

// conversionFailure wraps err as an ErrConversion diagnostic.
func (s *ExactSolver) conversionFailure(err error) Result[rational.Rational] {
	return unsolved[rational.Rational](s.opts.diagnostic(i18n.KeyInvalidInput, err), fmt.Errorf("%w: %w", ErrConversion, err))
}

// recoverInto turns a panic raised while solving into an ErrConversion
// diagnostic stored in *res.
func (s *ExactSolver) recoverInto(res *Result[rational.Rational]) {
	if r := recover(); r != nil {
		*res = s.conversionFailure(fmt.Errorf("%v", r))
	}
}

// validateRationalSystem mirrors matrix.ValidateSystem for rational grids.
func validateRationalSystem(A rational.Matrix, B rational.Vector) error {
	n := len(A)
	if n == 0 {
		return matrix.ErrInvalidDimensions
	}
	for i, row := range A {
		if len(row) != n {
			return fmt.Errorf("row %d: %w", i, matrix.ErrDimensionMismatch)
		}
	}
	if len(B) != n {
		return fmt.Errorf("constants: %w", matrix.ErrDimensionMismatch)
	}

	return nil
}
