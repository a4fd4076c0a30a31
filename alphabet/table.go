// SPDX-License-Identifier: MIT
// Package: gematria/alphabet
//
// table.go: Symbol and Table types, construction and lookups.
//
// Contract:
//   • A Table is immutable after New/Merge returns; all methods are read-only.
//   • Every rune maps to exactly one Symbol (duplicates are rejected).
//   • Letters() is the canonical order; variants never appear in it.
//   • Lookup falls back to unicode.ToLower, so tables only list one case.
//
// Complexity:
//   • New/Merge: O(S) for S symbols. Lookup/Index: O(1).

package alphabet

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/gematria/normalize"
)

const (
	methodNew     = "New"
	methodMerge   = "Merge"
	methodResolve = "Resolve"
)

// Symbol is a single character with its value.
// Ignorable symbols are synthesized by Resolve for whitespace and
// punctuation; they are never stored in a Table.
type Symbol struct {
	// Rune is the code point as stored in the table.
	Rune rune

	// Value is the numeric value (≥ 0).
	Value int

	// Ignorable marks runes that carry no value by definition.
	Ignorable bool

	// Name is the spelled-out letter name, empty when the table has none.
	Name string
}

// Table is an immutable rune → Symbol mapping with a canonical letter order.
type Table struct {
	name    string
	letters []rune
	index   map[rune]int
	symbols map[rune]Symbol
}

// New builds a table from canonical letters (in order) and lookup-only
// variants. Symbols must be unique runes with non-negative values.
func New(name string, letters, variants []Symbol) (*Table, error) {
	if name == "" || len(letters) == 0 {
		return nil, fmt.Errorf("%s(%q): %d letters: %w", methodNew, name, len(letters), ErrEmptyTable)
	}

	t := &Table{
		name:    name,
		letters: make([]rune, 0, len(letters)),
		index:   make(map[rune]int, len(letters)),
		symbols: make(map[rune]Symbol, len(letters)+len(variants)),
	}

	for _, s := range letters {
		if err := t.add(s); err != nil {
			return nil, fmt.Errorf("%s(%q): %w", methodNew, name, err)
		}
		t.index[s.Rune] = len(t.letters)
		t.letters = append(t.letters, s.Rune)
	}
	for _, s := range variants {
		if err := t.add(s); err != nil {
			return nil, fmt.Errorf("%s(%q): variant: %w", methodNew, name, err)
		}
	}

	return t, nil
}

// Merge unions tables under a new name. Letters keep the order of the inputs;
// any rune present in two inputs is a conflict.
func Merge(name string, tables ...*Table) (*Table, error) {
	var letters, variants []Symbol
	for _, src := range tables {
		if src == nil {
			return nil, fmt.Errorf("%s(%q): nil table: %w", methodMerge, name, ErrEmptyTable)
		}
		for _, r := range src.letters {
			letters = append(letters, src.symbols[r])
		}
		for r, s := range src.symbols {
			if _, isLetter := src.index[r]; !isLetter {
				variants = append(variants, s)
			}
		}
	}

	t, err := New(name, letters, variants)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMerge, err)
	}
	return t, nil
}

func (t *Table) add(s Symbol) error {
	if s.Rune == utf8.RuneError || s.Rune == 0 || s.Value < 0 || s.Ignorable {
		return fmt.Errorf("%q=%d: %w", s.Rune, s.Value, ErrInvalidSymbol)
	}
	if _, dup := t.symbols[s.Rune]; dup {
		return fmt.Errorf("%q: %w", s.Rune, ErrDuplicateSymbol)
	}
	t.symbols[s.Rune] = s
	return nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Len returns the number of canonical letters.
func (t *Table) Len() int { return len(t.letters) }

// Letters returns a copy of the canonical letters in order.
func (t *Table) Letters() []rune {
	out := make([]rune, len(t.letters))
	copy(out, t.letters)
	return out
}

// Index returns the position of r in the canonical order.
func (t *Table) Index(r rune) (int, bool) {
	i, ok := t.index[r]
	return i, ok
}

// Lookup returns the stored symbol for r, trying the lower-case form when r
// itself is absent.
func (t *Table) Lookup(r rune) (Symbol, bool) {
	if s, ok := t.symbols[r]; ok {
		return s, true
	}
	if lower := unicode.ToLower(r); lower != r {
		s, ok := t.symbols[lower]
		return s, ok
	}
	return Symbol{}, false
}

// Resolve maps r to a Symbol under policy p:
// table entries resolve to themselves, ignorable runes to an Ignorable symbol
// with value 0, unknown runes to a zero-valued symbol (Lenient) or
// ErrUnknownSymbol (Strict).
func (t *Table) Resolve(r rune, p Policy) (Symbol, error) {
	if s, ok := t.Lookup(r); ok {
		return s, nil
	}
	if normalize.IsIgnorable(r) {
		return Symbol{Rune: r, Ignorable: true}, nil
	}
	if p == Strict {
		return Symbol{Rune: r}, fmt.Errorf("%s: %q (U+%04X) not in %s: %w",
			methodResolve, r, r, t.name, ErrUnknownSymbol)
	}
	return Symbol{Rune: r}, nil
}

// ValueOf returns the value of r under policy p (see Resolve).
func (t *Table) ValueOf(r rune, p Policy) (int, error) {
	s, err := t.Resolve(r, p)
	return s.Value, err
}

// SpelledName returns the spelled-out name of letter r ("" if none).
func (t *Table) SpelledName(r rune) string {
	s, _ := t.Lookup(r)
	return s.Name
}
