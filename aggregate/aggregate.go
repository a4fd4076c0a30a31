// SPDX-License-Identifier: MIT
// Package: gematria/aggregate
//
// aggregate.go: Result and the reductions over an encode.Sequence.
//
// Contract:
//   • Aggregate(seq) reports ok=false for an empty seq and computes nothing.
//   • Sum is exact in int64; Product is exact in *big.Int.
//   • InverseSum.Infinite iff Sum==0; InverseProduct.Infinite iff Product==0.
//
// Complexity: O(n) additions, O(n) big multiplications.

package aggregate

import (
	"math/big"

	"github.com/katalvlaran/gematria/encode"
)

// Result holds the aggregate statistics of one sequence.
type Result struct {
	Sum            int64
	Product        *big.Int
	InverseSum     Quotient
	InverseProduct Quotient
}

// Aggregate computes sum, product and both inverses of seq.
func Aggregate(seq encode.Sequence) (Result, bool) {
	if seq.Empty() {
		return Result{}, false
	}

	sum := Sum(seq)
	product := Product(seq)

	return Result{
		Sum:            sum,
		Product:        product,
		InverseSum:     Inverse(big.NewInt(sum)),
		InverseProduct: Inverse(product),
	}, true
}

// Sum returns Σ seq[i].
func Sum(seq encode.Sequence) int64 {
	var total int64
	for _, v := range seq {
		total += int64(v)
	}
	return total
}

// Product returns Π seq[i] exactly. The empty product is 1.
func Product(seq encode.Sequence) *big.Int {
	out := big.NewInt(1)
	factor := new(big.Int)
	for _, v := range seq {
		out.Mul(out, factor.SetInt64(int64(v)))
	}
	return out
}

// Ratios returns the consecutive ratios seq[i]/seq[i-1] for i ≥ 1.
func Ratios(seq encode.Sequence) []Quotient {
	if len(seq) < 2 {
		return nil
	}
	out := make([]Quotient, 0, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		out = append(out, Ratio(int64(seq[i]), int64(seq[i-1])))
	}
	return out
}
