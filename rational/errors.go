// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite is returned when a NaN or ±Inf float is converted.
	ErrNonFinite = errors.New("rational: cannot convert NaN or Inf to a rational")

	// ErrDivisionByZero is returned by Quo and New when the divisor is zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrBadBound is returned when a denominator bound is smaller than 1.
	ErrBadBound = errors.New("rational: max denominator must be >= 1")
)

// ratErrorf wraps err with an operation tag, preserving it for errors.Is.
func ratErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
