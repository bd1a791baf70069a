// SPDX-License-Identifier: MIT

// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions.
//   - Each facade delegates to the canonical implementation; no logic duplication.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Determinant is an intention-revealing alias of Det.
func Determinant(m Matrix) (float64, error) { return Det(m) }

// ReplaceColumn is an intention-revealing alias of WithColumn.
func ReplaceColumn(m Matrix, col int, v []float64) (*Dense, error) { return WithColumn(m, col, v) }
