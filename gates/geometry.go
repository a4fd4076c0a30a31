// SPDX-License-Identifier: MIT
// Package: gematria/gates
//
// geometry.go: the 231 gates against the 216 (6³) of the sealed directions.

package gates

import "github.com/katalvlaran/gematria/aggregate"

// Cube is the six directions sealed three times: 6³ = 216.
const (
	CubeEdge = 6
	Cube     = CubeEdge * CubeEdge * CubeEdge
)

// CubeComparison relates a gate count to the cube number.
type CubeComparison struct {
	Gates      int
	Cube       int
	Difference int
	Ratio      aggregate.Quotient
}

// Compare relates the number of gates in l to 216.
func Compare(l *Lattice) CubeComparison {
	n := l.Len()
	return CubeComparison{
		Gates:      n,
		Cube:       Cube,
		Difference: n - Cube,
		Ratio:      aggregate.Ratio(int64(n), Cube),
	}
}
