package format

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/cramer/rational"
)

// Number is the set of value types the solvers return.
type Number interface {
	rational.Rational | float64
}

// Rational renders r as "n" when r is an integer and as "\frac{p}{q}"
// otherwise. The sign stays on the numerator.
func Rational(r rational.Rational) string {
	if r.IsInt() {
		return r.Num().String()
	}

	return fmt.Sprintf(`\frac{%s}{%s}`, r.Num(), r.Denom())
}

// Float renders f without a decimal point when it equals its truncation
// and with two fixed decimals otherwise.
func Float(f float64) string {
	if f == math.Trunc(f) {
		if f == 0 {
			return "0" // never "-0"
		}

		return strconv.FormatFloat(f, 'f', 0, 64)
	}

	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Value dispatches to Rational or Float.
func Value[T Number](v T) string {
	switch x := any(v).(type) {
	case rational.Rational:
		return Rational(x)
	case float64:
		return Float(x)
	}

	return fmt.Sprint(v)
}

// Plain renders v without markup: rationals as "p/q" and floats in the
// shortest form that round-trips, with negative zero shown as "0".
func Plain[T Number](v T) string {
	switch x := any(v).(type) {
	case rational.Rational:
		return x.String()
	case float64:
		if x == 0 {
			return "0"
		}

		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	return fmt.Sprint(v)
}
