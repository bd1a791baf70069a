// Package format renders solver values and systems as display strings.
//
// Rational values render as an integer when the denominator is 1 and as a
// LaTeX \frac otherwise; floats render without a decimal point when they are
// whole and with exactly two decimals otherwise. The package also carries
// the fixed unknown labels (x, y, z, w, v, u, p, q, r, s) and LaTeX renderings
// of a whole system A·X = B. Nothing here validates numeric input.
package format
