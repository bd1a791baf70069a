package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cramer/format"
)

// MinUnknowns is the smallest system the command accepts.
const MinUnknowns = 2

var (
	// ErrParse reports a malformed matrix or vector literal.
	ErrParse = errors.New("cli: cannot parse input")

	// ErrSize reports a system outside [MinUnknowns, format.MaxUnknowns]
	// or a non-square one.
	ErrSize = errors.New("cli: unsupported system size")
)

// ParseVector parses "3, 5" into []float64. Whitespace around cells is ignored.
func ParseVector(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty vector", ErrParse)
	}
	cells := strings.Split(s, ",")
	out := make([]float64, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %d: %w", ErrParse, i, err)
		}
		out[i] = v
	}

	return out, nil
}

// ParseGrid parses "2,1; 1,3" into rows. Rows may be ragged; shape checks
// belong to checkSize.
func ParseGrid(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty matrix", ErrParse)
	}
	rows := strings.Split(s, ";")
	out := make([][]float64, len(rows))
	for i, r := range rows {
		row, err := ParseVector(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = row
	}

	return out, nil
}

// checkSize enforces a square n×n system with n in [MinUnknowns, MaxUnknowns].
func checkSize(coeff [][]float64, consts []float64) error {
	n := len(coeff)
	if n < MinUnknowns || n > format.MaxUnknowns {
		return fmt.Errorf("%w: %d unknowns (want %d..%d)", ErrSize, n, MinUnknowns, format.MaxUnknowns)
	}
	for i, row := range coeff {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrSize, i, len(row), n)
		}
	}
	if len(consts) != n {
		return fmt.Errorf("%w: %d constants, want %d", ErrSize, len(consts), n)
	}

	return nil
}
