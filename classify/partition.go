// SPDX-License-Identifier: MIT
// Package: gematria/classify
//
// partition.go: Partition construction and queries.
//
// Contract:
//   • Mothers ∪ Doubles ∪ Simples = letters; groups pairwise disjoint.
//   • Each group is sorted by the letter's position in letters.
//   • Never panics.
//
// Complexity: O(n) for n letters.

package classify

import (
	"fmt"

	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/lore"
)

const methodNew = "New"

// Category is the group a letter belongs to.
type Category int

const (
	// Simple is the default: every letter that is neither mother nor double.
	Simple Category = iota
	Mother
	Double
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Mother:
		return "mother"
	case Double:
		return "double"
	default:
		return "simple"
	}
}

// Partition splits an alphabet into mothers, doubles and simples.
type Partition struct {
	Mothers []rune
	Doubles []rune
	Simples []rune

	category map[rune]Category
}

// New builds the partition of letters given the mothers and doubles;
// simples are the rest.
func New(letters, mothers, doubles []rune) (Partition, error) {
	pos := make(map[rune]int, len(letters))
	for i, r := range letters {
		if _, dup := pos[r]; dup {
			return Partition{}, fmt.Errorf("%s: alphabet %q: %w", methodNew, r, ErrDuplicate)
		}
		pos[r] = i
	}

	category := make(map[rune]Category, len(letters))
	assign := func(group []rune, c Category) error {
		seen := make(map[rune]struct{}, len(group))
		for _, r := range group {
			if _, dup := seen[r]; dup {
				return fmt.Errorf("%s: %s %q: %w", methodNew, c, r, ErrDuplicate)
			}
			seen[r] = struct{}{}
			if _, ok := pos[r]; !ok {
				return fmt.Errorf("%s: %s %q: %w", methodNew, c, r, ErrNotInAlphabet)
			}
			if prev, taken := category[r]; taken {
				return fmt.Errorf("%s: %q is %s and %s: %w", methodNew, r, prev, c, ErrOverlap)
			}
			category[r] = c
		}
		return nil
	}
	if err := assign(mothers, Mother); err != nil {
		return Partition{}, err
	}
	if err := assign(doubles, Double); err != nil {
		return Partition{}, err
	}

	p := Partition{category: category}
	for _, r := range letters {
		switch category[r] {
		case Mother:
			p.Mothers = append(p.Mothers, r)
		case Double:
			p.Doubles = append(p.Doubles, r)
		default:
			// walking letters in order keeps every group sorted by position
			category[r] = Simple
			p.Simples = append(p.Simples, r)
		}
	}
	return p, nil
}

// SeferYetzirah partitions table's letters with the classical mothers and
// doubles from the embedded lore.
func SeferYetzirah(table *alphabet.Table) (Partition, error) {
	if table == nil {
		return Partition{}, fmt.Errorf("SeferYetzirah: %w", ErrNilTable)
	}
	l := lore.Default()
	p, err := New(table.Letters(), l.Mothers(), l.Doubles())
	if err != nil {
		return Partition{}, fmt.Errorf("SeferYetzirah(%s): %w", table.Name(), err)
	}
	return p, nil
}

// Category returns the group of r; ok is false when r is not in the alphabet.
func (p Partition) Category(r rune) (Category, bool) {
	c, ok := p.category[r]
	return c, ok
}

// Len returns the number of letters partitioned.
func (p Partition) Len() int { return len(p.Mothers) + len(p.Doubles) + len(p.Simples) }
