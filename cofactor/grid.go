// SPDX-License-Identifier: MIT

package cofactor

import "github.com/katalvlaran/cramer/rational"

// Grid is a read-only square view of rationals.
// Size returns n; At(i, j) is defined for 0 ≤ i, j < n.
type Grid interface {
	Size() int
	At(i, j int) rational.Rational
}

// matrixGrid adapts rational.Matrix to Grid.
type matrixGrid rational.Matrix

func (g matrixGrid) Size() int { return len(g) }
func (g matrixGrid) At(i, j int) rational.Rational { return g[i][j] }

// Of returns m as a Grid without copying.
func Of(m rational.Matrix) Grid { return matrixGrid(m) }

// columnSwap is base with column col read from vec instead.
type columnSwap struct {
	base Grid
	col  int
	vec  rational.Vector
}

func (g columnSwap) Size() int { return g.base.Size() }

func (g columnSwap) At(i, j int) rational.Rational {
	if j == g.col {
		return g.vec[i]
	}

	return g.base.At(i, j)
}

// WithColumn returns a view of base whose column col is replaced by vec.
// Neither base nor vec is copied; len(vec) must equal base.Size().
func WithColumn(base Grid, col int, vec rational.Vector) Grid {
	return columnSwap{base: base, col: col, vec: vec}
}
