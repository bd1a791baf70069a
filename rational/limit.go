// SPDX-License-Identifier: MIT

package rational

import "math/big"

// LimitDenominator returns the closest rational to r whose denominator is at
// most maxDen.
//
// Implementation:
//   - Stage 1: If r already fits the bound, return it unchanged.
//   - Stage 2: Walk the continued-fraction convergents p/q of r until the next
//     denominator would exceed maxDen.
//   - Stage 3: Compare the last convergent with the best semiconvergent
//     (p0+k·p1)/(q0+k·q1), k = ⌊(maxDen−q0)/q1⌋, and return the closer one;
//     on a tie the convergent wins because it has the smaller denominator.
//
// Errors:
//   - ErrBadBound when maxDen < 1.
//
// Complexity:
//   - O(log q) big-integer steps, q = Denom(r).
func (r Rational) LimitDenominator(maxDen int64) (Rational, error) {
	if maxDen < 1 {
		return Zero, ratErrorf("LimitDenominator", ErrBadBound)
	}
	x := r.rat()
	bound := big.NewInt(maxDen)
	if x.Denom().Cmp(bound) <= 0 {
		return FromBig(x), nil
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n, d := new(big.Int).Set(x.Num()), new(big.Int).Set(x.Denom())
	a := new(big.Int)
	for {
		a.Div(n, d) // d > 0, so Euclidean division is floor division
		q2 := new(big.Int).Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(bound) > 0 {
			break
		}
		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)
		p0, q0, p1, q1 = p1, q1, p2, q2

		rem := new(big.Int).Mul(a, d)
		rem.Sub(n, rem)
		n, d = d, rem
	}

	k := new(big.Int).Sub(bound, q0)
	k.Div(k, q1)
	semiP := new(big.Int).Mul(k, p1)
	semiP.Add(semiP, p0)
	semiQ := new(big.Int).Mul(k, q1)
	semiQ.Add(semiQ, q0)

	semi := new(big.Rat).SetFrac(semiP, semiQ)
	conv := new(big.Rat).SetFrac(p1, q1)

	distSemi := new(big.Rat).Sub(semi, x)
	distSemi.Abs(distSemi)
	distConv := new(big.Rat).Sub(conv, x)
	distConv.Abs(distConv)
	if distConv.Cmp(distSemi) <= 0 {
		return Rational{v: conv}, nil
	}

	return Rational{v: semi}, nil
}
