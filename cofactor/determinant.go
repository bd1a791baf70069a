// SPDX-License-Identifier: MIT

package cofactor

import "github.com/katalvlaran/cramer/rational"

// Det returns the exact determinant of the square matrix m.
// Squareness is the caller's responsibility; the 0×0 matrix has determinant 1.
func Det(m rational.Matrix) rational.Rational {
	return DetGrid(Of(m))
}

// DetGrid returns the exact determinant of g.
//
// Implementation:
//   - Stage 1: Start with row 0 and the identity column list [0, n).
//   - Stage 2: Recurse through expand; sizes 1 and 2 are closed forms.
//
// Complexity:
//   - Time O(n!), Space O(n²).
func DetGrid(g Grid) rational.Rational {
	n := g.Size()
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}

	return expand(g, 0, cols)
}

// expand evaluates the determinant of the minor made of rows [row, row+len(cols))
// and the listed columns, expanding along its first row.
func expand(g Grid, row int, cols []int) rational.Rational {
	n := len(cols)
	switch n {
	case 0:
		return rational.One
	case 1:
		return g.At(row, cols[0])
	case 2:
		// a00·a11 − a01·a10
		ad := g.At(row, cols[0]).Mul(g.At(row+1, cols[1]))
		bc := g.At(row, cols[1]).Mul(g.At(row+1, cols[0]))

		return ad.Sub(bc)
	}

	det := rational.Zero
	minor := make([]int, n-1) // reused per column; callee only reads it while running
	var c int
	for c = 0; c < n; c++ {
		a := g.At(row, cols[c])
		if a.IsZero() {
			continue // zero entry: the whole cofactor term vanishes
		}
		copy(minor, cols[:c])
		copy(minor[c:], cols[c+1:])

		term := a.Mul(expand(g, row+1, minor))
		if c%2 == 1 {
			det = det.Sub(term)
		} else {
			det = det.Add(term)
		}
	}

	return det
}
