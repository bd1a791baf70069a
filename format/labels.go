package format

import (
	"errors"
	"fmt"
	"strings"
)

// MaxUnknowns is the size of the fixed label set.
const MaxUnknowns = 10

var labelSet = [MaxUnknowns]string{"x", "y", "z", "w", "v", "u", "p", "q", "r", "s"}

// ErrLabelRange is returned when more labels are requested than exist.
var ErrLabelRange = errors.New("format: number of unknowns must be in [1, 10]")

// ErrLengthMismatch is returned when labels and values differ in length.
var ErrLengthMismatch = errors.New("format: labels and values differ in length")

// Labels returns the first n unknown names.
func Labels(n int) ([]string, error) {
	if n < 1 || n > MaxUnknowns {
		return nil, fmt.Errorf("Labels(%d): %w", n, ErrLabelRange)
	}

	return append([]string(nil), labelSet[:n]...), nil
}

// Assignments renders one "label = value" line per unknown using render.
func Assignments[T Number](labels []string, values []T, render func(T) string) ([]string, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("Assignments: %d labels, %d values: %w", len(labels), len(values), ErrLengthMismatch)
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = labels[i] + " = " + render(v)
	}

	return out, nil
}

// bmatrix wraps rows of cells in a LaTeX bmatrix environment.
func bmatrix(rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(`\begin{bmatrix}`)
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(` \\ `)
		}
		sb.WriteString(strings.Join(row, " & "))
	}
	sb.WriteString(`\end{bmatrix}`)

	return sb.String()
}

// column turns a flat list into a single-column grid.
func column(cells []string) [][]string {
	rows := make([][]string, len(cells))
	for i, c := range cells {
		rows[i] = []string{c}
	}

	return rows
}

// SystemLaTeX renders A · X = B with bmatrix environments, formatting cells
// with Float. Ragged input is rendered as given.
func SystemLaTeX(coeff [][]float64, consts []float64, labels []string) string {
	a := make([][]string, len(coeff))
	for i, row := range coeff {
		a[i] = make([]string, len(row))
		for j, v := range row {
			a[i][j] = Float(v)
		}
	}
	b := make([]string, len(consts))
	for i, v := range consts {
		b[i] = Float(v)
	}

	return bmatrix(a) + ` \cdot ` + bmatrix(column(labels)) + " = " + bmatrix(column(b))
}
