// SPDX-License-Identifier: MIT

package rational

import (
	"math"
	"math/big"
)

// DefaultMaxDenominator is the denominator bound used by Approximate callers
// that do not configure one. It keeps every value a user can type with a few
// decimal places exact (0.01 → 1/100) while collapsing binary noise.
const DefaultMaxDenominator int64 = 1_000_000

// Rational is an exact rational number. The zero value is 0.
// Values are immutable; methods never modify the receiver or arguments.
type Rational struct {
	v *big.Rat // nil means 0; never mutated after construction
}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Rational{}
	One  = FromInt(1)
)

// rat returns the backing value, substituting a fresh 0 for the zero value.
func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}

	return r.v
}

// New returns num/den in lowest terms.
// Returns ErrDivisionByZero when den == 0.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Zero, ratErrorf("New", ErrDivisionByZero)
	}

	return Rational{v: big.NewRat(num, den)}, nil
}

// MustNew is New for constants known to be valid; it panics when den == 0.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns the integer n as a Rational.
func FromInt(n int64) Rational {
	return Rational{v: new(big.Rat).SetInt64(n)}
}

// FromBig returns a Rational holding a copy of x. A nil x yields 0.
func FromBig(x *big.Rat) Rational {
	if x == nil {
		return Zero
	}

	return Rational{v: new(big.Rat).Set(x)}
}

// FromFloat64 converts f exactly: the result equals the binary value of f.
// Returns ErrNonFinite for NaN and ±Inf.
func FromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero, ratErrorf("FromFloat64", ErrNonFinite)
	}

	return Rational{v: new(big.Rat).SetFloat64(f)}, nil
}

// Approximate converts f to the closest rational whose denominator does not
// exceed maxDen. It is FromFloat64 followed by LimitDenominator.
func Approximate(f float64, maxDen int64) (Rational, error) {
	r, err := FromFloat64(f)
	if err != nil {
		return Zero, err
	}

	return r.LimitDenominator(maxDen)
}

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	return Rational{v: new(big.Rat).Add(r.rat(), s.rat())}
}

// Sub returns r − s.
func (r Rational) Sub(s Rational) Rational {
	return Rational{v: new(big.Rat).Sub(r.rat(), s.rat())}
}

// Mul returns r · s.
func (r Rational) Mul(s Rational) Rational {
	return Rational{v: new(big.Rat).Mul(r.rat(), s.rat())}
}

// Quo returns r / s, or ErrDivisionByZero when s is 0.
func (r Rational) Quo(s Rational) (Rational, error) {
	if s.IsZero() {
		return Zero, ratErrorf("Quo", ErrDivisionByZero)
	}

	return Rational{v: new(big.Rat).Quo(r.rat(), s.rat())}, nil
}

// Neg returns −r.
func (r Rational) Neg() Rational {
	return Rational{v: new(big.Rat).Neg(r.rat())}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return Rational{v: new(big.Rat).Abs(r.rat())}
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	return r.rat().Sign()
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool {
	return r.rat().IsInt()
}

// Cmp compares r and s and returns -1, 0 or +1.
func (r Rational) Cmp(s Rational) int {
	return r.rat().Cmp(s.rat())
}

// Equal reports whether r == s exactly.
func (r Rational) Equal(s Rational) bool {
	return r.Cmp(s) == 0
}

// Num returns a copy of the numerator; its sign is the sign of r.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.rat().Num())
}

// Denom returns a copy of the denominator; it is always > 0.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.rat().Denom())
}

// Big returns a copy of r as a *big.Rat.
func (r Rational) Big() *big.Rat {
	return new(big.Rat).Set(r.rat())
}

// Float64 returns the nearest float64 to r.
func (r Rational) Float64() float64 {
	f, _ := r.rat().Float64()

	return f
}

// String renders integers as "n" and everything else as "p/q".
func (r Rational) String() string {
	return r.rat().RatString()
}
