// SPDX-License-Identifier: MIT
// Package: gematria/alphabet
//
// builtin.go: embedded tables (data/*.yaml) and their registry.
//
// Determinism:
//   • Files are parsed once, on first use, in lexical file order.
//   • Names() is sorted.
//
// The combined table is Merge(hebrew, arabic, greek, latin); the gadol table
// is kept out of it because it redefines the Hebrew finals.

package alphabet

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Built-in table names.
const (
	TableHebrew      = "hebrew"
	TableHebrewGadol = "hebrew-gadol"
	TableGreek       = "greek"
	TableArabic      = "arabic"
	TableLatin       = "latin"
	TableCombined    = "combined"
)

//go:embed data/*.yaml
var dataFS embed.FS

type tableFile struct {
	Name     string       `yaml:"name"`
	Letters  []symbolFile `yaml:"letters"`
	Variants []symbolFile `yaml:"variants"`
}

type symbolFile struct {
	Symbol string `yaml:"symbol"`
	Value  int    `yaml:"value"`
	Name   string `yaml:"name"`
}

var builtins = sync.OnceValues(loadBuiltins)

func loadBuiltins() (map[string]*Table, error) {
	paths, err := fs.Glob(dataFS, "data/*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	out := make(map[string]*Table, len(paths)+1)
	for _, p := range paths {
		raw, err := dataFS.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("alphabet: read %s: %w", p, err)
		}
		t, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("alphabet: %s: %w", p, err)
		}
		if _, dup := out[t.Name()]; dup {
			return nil, fmt.Errorf("alphabet: %s: table %q: %w", p, t.Name(), ErrDuplicateSymbol)
		}
		out[t.Name()] = t
	}

	combined, err := Merge(TableCombined, out[TableHebrew], out[TableArabic], out[TableGreek], out[TableLatin])
	if err != nil {
		return nil, fmt.Errorf("alphabet: %s: %w", TableCombined, err)
	}
	out[TableCombined] = combined

	return out, nil
}

// Parse decodes a YAML table document:
//
//	name: hebrew
//	letters:  [{symbol: "א", value: 1, name: "אלף"}, ...]
//	variants: [{symbol: "ך", value: 20}, ...]
func Parse(raw []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	letters, err := toSymbols(f.Letters)
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): %w", f.Name, err)
	}
	variants, err := toSymbols(f.Variants)
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): variant: %w", f.Name, err)
	}
	return New(f.Name, letters, variants)
}

func toSymbols(in []symbolFile) ([]Symbol, error) {
	out := make([]Symbol, 0, len(in))
	for _, s := range in {
		r, size := utf8.DecodeRuneInString(s.Symbol)
		if size == 0 || size != len(s.Symbol) {
			return nil, fmt.Errorf("%q: %w", s.Symbol, ErrInvalidSymbol)
		}
		out = append(out, Symbol{Rune: r, Value: s.Value, Name: s.Name})
	}
	return out, nil
}

// ByName returns the built-in table called name.
func ByName(name string) (*Table, error) {
	all, err := builtins()
	if err != nil {
		return nil, err
	}
	t, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownTable)
	}
	return t, nil
}

// MustByName is ByName for names known at compile time; it panics on error.
func MustByName(name string) *Table {
	t, err := ByName(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Names lists the built-in table names, sorted.
func Names() []string {
	all, err := builtins()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(all))
	for n := range all {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Hebrew returns the standard 22-letter Hebrew table.
func Hebrew() *Table { return MustByName(TableHebrew) }

// Greek returns the Greek (Milesian) table.
func Greek() *Table { return MustByName(TableGreek) }

// Arabic returns the abjad table.
func Arabic() *Table { return MustByName(TableArabic) }

// Latin returns the Latin table.
func Latin() *Table { return MustByName(TableLatin) }

// Combined returns the union of the Hebrew, Arabic, Greek and Latin tables.
func Combined() *Table { return MustByName(TableCombined) }
