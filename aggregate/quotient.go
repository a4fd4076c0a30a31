// SPDX-License-Identifier: MIT
// Package: gematria/aggregate
//
// quotient.go: exact quotients with an explicit "infinity" sentinel.
//
// Contract:
//   • Infinite is true iff the denominator was exactly zero; Value is nil then.
//   • String renders "infinity" or the shortest float64 form that round-trips;
//     values too small for float64 fall back to a 17-digit big.Float.

package aggregate

import (
	"math"
	"math/big"
	"strconv"
)

// Infinity is the rendering of an undefined (zero-denominator) quotient.
const Infinity = "infinity"

// Quotient is an exact rational result, or the infinity sentinel.
type Quotient struct {
	Value    *big.Rat
	Infinite bool
}

// Divide returns num/den; a zero den yields the infinity sentinel.
func Divide(num, den *big.Int) Quotient {
	if den == nil || den.Sign() == 0 {
		return Quotient{Infinite: true}
	}
	return Quotient{Value: new(big.Rat).SetFrac(new(big.Int).Set(num), new(big.Int).Set(den))}
}

// Ratio returns a/b for machine integers.
func Ratio(a, b int64) Quotient {
	return Divide(big.NewInt(a), big.NewInt(b))
}

// Inverse returns 1/n.
func Inverse(n *big.Int) Quotient {
	return Divide(big.NewInt(1), n)
}

// Float64 returns the nearest float64; +Inf for the sentinel.
func (q Quotient) Float64() float64 {
	if q.Infinite || q.Value == nil {
		return math.Inf(1)
	}
	f, _ := q.Value.Float64()
	return f
}

// String renders the quotient for reports.
func (q Quotient) String() string {
	if q.Infinite || q.Value == nil {
		return Infinity
	}
	if q.Value.Sign() == 0 {
		return "0"
	}
	f, _ := q.Value.Float64()
	if f != 0 && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return new(big.Float).SetPrec(128).SetRat(q.Value).Text('g', 17)
}

// Format renders the quotient with a fixed number of decimals.
func (q Quotient) Format(decimals int) string {
	if q.Infinite || q.Value == nil {
		return Infinity
	}
	return q.Value.FloatString(decimals)
}
