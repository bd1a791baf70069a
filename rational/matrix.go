// SPDX-License-Identifier: MIT

package rational

import "fmt"

// Matrix is a row-major grid of rationals. The exact path keeps it as plain
// nested slices: the grids are at most 10×10 and the determinant code reads
// them through index views rather than copying.
type Matrix [][]Rational

// Vector is an ordered sequence of rationals.
type Vector []Rational

// MatrixFromFloats converts every cell with Approximate(cell, maxDen).
// Rows may be ragged; shape is the caller's concern.
// The returned error names the offending cell and wraps ErrNonFinite or ErrBadBound.
func MatrixFromFloats(rows [][]float64, maxDen int64) (Matrix, error) {
	out := make(Matrix, len(rows))
	for i, row := range rows {
		out[i] = make([]Rational, len(row))
		for j, f := range row {
			r, err := Approximate(f, maxDen)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			out[i][j] = r
		}
	}

	return out, nil
}

// VectorFromFloats converts every element with Approximate(x, maxDen).
func VectorFromFloats(xs []float64, maxDen int64) (Vector, error) {
	out := make(Vector, len(xs))
	for i, f := range xs {
		r, err := Approximate(f, maxDen)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}

	return out, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]Rational, n)
		m[i][i] = One
	}

	return m
}

// MulVec returns m·x. It returns an error when a row's length differs from len(x).
func (m Matrix) MulVec(x Vector) (Vector, error) {
	y := make(Vector, len(m))
	for i, row := range m {
		if len(row) != len(x) {
			return nil, fmt.Errorf("MulVec: row %d has %d cols, vector has %d", i, len(row), len(x))
		}
		acc := Zero
		for j, a := range row {
			acc = acc.Add(a.Mul(x[j]))
		}
		y[i] = acc
	}

	return y, nil
}
