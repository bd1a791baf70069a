// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the numeric
// Cramer's Rule path: pivoted LU factorization, determinant, column
// substitution and matrix-vector product. All kernels perform strict
// fail-fast validation and never mutate their inputs.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Kernels copy non-*Dense inputs once into a *Dense and then run a single
//     flat-slice loop; there is no separate interface-based path.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LUP.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opLUP        = "LUP"
	opDet        = "Det"
	opWithColumn = "WithColumn"
	opMatVec     = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it already is a *Dense, otherwise a *Dense
// copy built through At. The caller must not mutate the result when it may
// alias m.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// LUFactors holds the result of a pivoted factorization P*A = L*U.
//
// Perm[i] is the index of the row of A that ended up at row i of P*A.
// Sign is +1 or −1, the parity of the row permutation, i.e. det(P).
type LUFactors struct {
	L    *Dense  // unit lower triangular
	U    *Dense  // upper triangular
	Perm []int   // row permutation
	Sign float64 // det(P)
}

// LUP computes the Doolittle factorization P*A = L*U with partial pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy A into a flat work slice.
//   - Stage 2: For k=0..n-1 pick the row p ≥ k with the largest |a[p,k]|
//     (first one on ties), swap it into place, then eliminate below the pivot
//     storing multipliers in the strictly lower part.
//   - Stage 3: Split the work slice into L (unit diagonal) and U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (a pivot column is all zeros).
//
// Determinism:
//   - Fixed k→i→j loop order and a deterministic tie-break for pivots.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Partial pivoting keeps multipliers |l_ij| ≤ 1, which bounds growth of
//     rounding error on the small systems this package targets.
func LUP(m Matrix) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLUP, err)
	}

	n := src.r
	a := make([]float64, len(src.data)) // work copy; src is never mutated
	copy(a, src.data)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var i, j, k, p int
	var best, v, pivot, mult float64
	for k = 0; k < n; k++ {
		// Pivot search
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opLUP, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		// Elimination below the pivot
		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			mult = a[i*n+k] / pivot
			a[i*n+k] = mult
			if mult == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= mult * a[k*n+j]
			}
		}
	}

	L, _ := NewDense(n, n) // n > 0 is guaranteed by src
	U, _ := NewDense(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = a[i*n+j]
			case j == i:
				L.data[i*n+j] = 1
				U.data[i*n+j] = a[i*n+j]
			default:
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Det returns det(A) = Sign * Π U[i,i] from the pivoted factorization.
// An exactly singular matrix yields 0 with a nil error; near-singular
// matrices yield a tiny value and it is up to the caller to apply a tolerance.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det(m Matrix) (float64, error) {
	f, err := LUP(m)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := f.U.r
	det := f.Sign
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det, nil
}

// WithColumn returns a copy of m whose column col is replaced by v.
// m is left untouched.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (col outside [0, Cols)), ErrDimensionMismatch (len(v) != Rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func WithColumn(m Matrix, col int, v []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opWithColumn, err)
	}
	if col < 0 || col >= m.Cols() {
		return nil, matrixErrorf(opWithColumn, fmt.Errorf("column %d: %w", col, ErrOutOfRange))
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return nil, matrixErrorf(opWithColumn, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opWithColumn, err)
	}

	out := src.Clone().(*Dense)
	for i := 0; i < out.r; i++ {
		out.data[i*out.c+col] = v[i]
	}

	return out, nil
}

// MatVec computes y = A*x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
