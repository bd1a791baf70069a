// SPDX-License-Identifier: MIT

// Package rational provides exact rational numbers for the exact Cramer's
// Rule path.
//
// What & Why:
//
//	Rational is an immutable value over math/big: every operation returns a
//	new value, the zero value is 0, and values are always kept in lowest
//	terms with a positive denominator. Numerators and denominators grow
//	without bound, so sums and products never round or overflow.
//
//	Inputs usually originate as float64 (UI cells, CLI flags). Converting a
//	float exactly (0.1 → 3602879701896397/36028797018963968) is correct but
//	useless for display, so Approximate snaps a float to the closest fraction
//	whose denominator does not exceed a bound (DefaultMaxDenominator = 10^6):
//	0.1 → 1/10, 1/3.0 → 1/3.
//
// Complexity:
//
//	Add/Sub/Mul/Quo cost O(M(b)) where b is the bit size of the operands.
//	LimitDenominator runs one continued-fraction expansion: O(log q) steps.
//
// See example_test.go for usage.
package rational
