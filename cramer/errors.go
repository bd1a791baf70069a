// SPDX-License-Identifier: MIT
// Package cramer: sentinel error set. Solvers never return these as Go
// errors; they classify a Result via Result.Err so callers can use errors.Is.

package cramer

import "errors"

var (
	// ErrShape marks a non-square coefficient matrix, a ragged row, an empty
	// system, or a constants vector whose length differs from N.
	ErrShape = errors.New("cramer: system is not square")

	// ErrSingular marks a zero determinant (exact path) or one within the
	// configured tolerance of zero (numeric path).
	ErrSingular = errors.New("cramer: no unique solution")

	// ErrConversion marks an input that could not be turned into a usable
	// number (NaN, ±Inf) or an unexpected failure recovered during solving.
	ErrConversion = errors.New("cramer: invalid input")
)
