// SPDX-License-Identifier: MIT
// Package: gematria/gates
//
// build.go: Build: emit the gates of an alphabet into a Lattice.
//
// Contract:
//   • len(letters) ≥ 2 (else ErrTooFewLetters); letters unique and in the table.
//   • Nodes are added in letter order; gates follow Enumerate's order.
//   • Name values are computed once per letter with the name encoder; a
//     Strict encoder surfaces bad name data as alphabet.ErrUnknownSymbol.
//   • Never panics; returns wrapped sentinel errors.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) gates. Space: O(n²) for the gate catalog.

package gates

import (
	"fmt"

	"github.com/katalvlaran/gematria/aggregate"
	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/encode"
)

const (
	methodBuild   = "Build"
	minGateLetter = 2
)

// Count returns the number of gates over n letters.
func Count(n int, ordered bool) int {
	if n < minGateLetter {
		return 0
	}
	if ordered {
		return n * (n - 1)
	}
	return n * (n - 1) / 2
}

// Enumerate lists index pairs over n positions: (i,j) with j>i when
// unordered, every j≠i when ordered; outer loop over i in both cases.
func Enumerate(n int, ordered bool) [][2]int {
	out := make([][2]int, 0, Count(n, ordered))
	for i := 0; i < n; i++ {
		start := i + 1
		if ordered {
			start = 0
		}
		for j := start; j < n; j++ {
			if i == j {
				continue
			}
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

// Build creates the gate lattice over table.
func Build(table *alphabet.Table, opts ...Option) (*Lattice, error) {
	if table == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilTable)
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.letters == nil {
		cfg.letters = table.Letters()
	}
	if cfg.names == nil {
		cfg.names = encode.New(table, encode.WithPolicy(alphabet.Strict))
	}

	n := len(cfg.letters)
	if n < minGateLetter {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBuild, n, minGateLetter, ErrTooFewLetters)
	}

	symbols := make([]alphabet.Symbol, n)
	nameValues := make([]int, n)
	seen := make(map[rune]struct{}, n)
	for i, r := range cfg.letters {
		s, ok := table.Lookup(r)
		if !ok {
			return nil, fmt.Errorf("%s: %q not in %s: %w", methodBuild, r, table.Name(), ErrUnknownLetter)
		}
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("%s: %q: %w", methodBuild, r, ErrDuplicateLetter)
		}
		seen[r] = struct{}{}

		nv, err := NameValue(cfg.names, s.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: name of %q: %w", methodBuild, r, err)
		}
		symbols[i], nameValues[i] = s, nv
	}

	l := newLattice(table, cfg.ordered, Count(n, cfg.ordered))
	for _, s := range symbols {
		l.addNode(s.Rune)
	}

	for _, p := range Enumerate(n, cfg.ordered) {
		i, j := p[0], p[1]
		g := &Gate{
			A:              symbols[i],
			B:              symbols[j],
			ValueSum:       symbols[i].Value + symbols[j].Value,
			NameValueA:     nameValues[i],
			NameValueB:     nameValues[j],
			NameRatio:      aggregate.Ratio(int64(nameValues[i]), int64(nameValues[j])),
			NameDifference: nameValues[i] - nameValues[j],
		}
		if err := l.addGate(g); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	return l, nil
}

// NameValue is the aggregate sum of the encoded name; an empty name, or one
// with no valued letters, is worth 0.
func NameValue(enc *encode.Encoder, name string) (int, error) {
	seq, err := enc.Encode(name)
	if err != nil {
		return 0, err
	}
	res, ok := aggregate.Aggregate(seq)
	if !ok {
		return 0, nil
	}
	return int(res.Sum), nil
}
