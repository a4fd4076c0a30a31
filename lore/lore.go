// SPDX-License-Identifier: MIT
// Package: gematria/lore
//
// lore.go: Lore, its record types and the embedded default.
//
// Contract:
//   • Parse validates every letter field (single rune) and every triplet
//     (three runes); mothers, doubles and sefirot must be non-empty.
//   • A *Lore is read-only after Parse and safe for concurrent use.
//   • Default panics only if the embedded file is broken, which the
//     package tests rule out.

package lore

import (
	_ "embed"
	"fmt"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed data/lore.yaml
var defaultData []byte

// Planet is the correspondence of a double letter.
type Planet struct {
	Letter  rune
	Name    string
	Weekday string
}

// Sign is the correspondence of a simple letter.
type Sign struct {
	Letter rune
	Zodiac string
	Month  string
}

// Sefirah is one of the ten emanations; Index is 1-based.
type Sefirah struct {
	Index  int
	Name   string
	Hebrew string
}

// Direction is a unit-ish vector from the center of the diagram.
type Direction struct {
	Name   string
	DX, DY float64
}

// Lore is the parsed data set.
type Lore struct {
	mothers    []rune
	doubles    []rune
	planets    map[rune]Planet
	signs      map[rune]Sign
	sefirot    []Sefirah
	directions []Direction
	spoke      float64
	triplets   []string
}

type loreFile struct {
	Mothers []string `yaml:"mothers"`
	Doubles []string `yaml:"doubles"`
	Planets []struct {
		Letter  string `yaml:"letter"`
		Planet  string `yaml:"planet"`
		Weekday string `yaml:"weekday"`
	} `yaml:"planets"`
	Signs []struct {
		Letter string `yaml:"letter"`
		Zodiac string `yaml:"zodiac"`
		Month  string `yaml:"month"`
	} `yaml:"signs"`
	Sefirot []struct {
		Name   string `yaml:"name"`
		Hebrew string `yaml:"hebrew"`
	} `yaml:"sefirot"`
	Directions struct {
		Length float64 `yaml:"length"`
		Spokes []struct {
			Name string  `yaml:"name"`
			DX   float64 `yaml:"dx"`
			DY   float64 `yaml:"dy"`
		} `yaml:"spokes"`
	} `yaml:"directions"`
	Triplets [][]string `yaml:"triplets"`
}

var defaultLore = sync.OnceValues(func() (*Lore, error) { return Parse(defaultData) })

// Default returns the embedded data set.
func Default() *Lore {
	l, err := defaultLore()
	if err != nil {
		panic(err)
	}
	return l
}

// Parse decodes a lore YAML document.
func Parse(raw []byte) (*Lore, error) {
	var f loreFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	l := &Lore{
		planets: make(map[rune]Planet, len(f.Planets)),
		signs:   make(map[rune]Sign, len(f.Signs)),
		spoke:   f.Directions.Length,
	}

	var err error
	if l.mothers, err = runes("mothers", f.Mothers); err != nil {
		return nil, err
	}
	if l.doubles, err = runes("doubles", f.Doubles); err != nil {
		return nil, err
	}

	for _, p := range f.Planets {
		r, err := letter(p.Letter)
		if err != nil {
			return nil, fmt.Errorf("Parse: planets: %w", err)
		}
		l.planets[r] = Planet{Letter: r, Name: p.Planet, Weekday: p.Weekday}
	}
	for _, s := range f.Signs {
		r, err := letter(s.Letter)
		if err != nil {
			return nil, fmt.Errorf("Parse: signs: %w", err)
		}
		l.signs[r] = Sign{Letter: r, Zodiac: s.Zodiac, Month: s.Month}
	}

	if len(f.Sefirot) == 0 {
		return nil, fmt.Errorf("Parse: sefirot: %w", ErrMissingData)
	}
	for i, s := range f.Sefirot {
		l.sefirot = append(l.sefirot, Sefirah{Index: i + 1, Name: s.Name, Hebrew: s.Hebrew})
	}

	for _, d := range f.Directions.Spokes {
		l.directions = append(l.directions, Direction{Name: d.Name, DX: d.DX, DY: d.DY})
	}

	for _, row := range f.Triplets {
		for _, t := range row {
			if utf8.RuneCountInString(t) != 3 {
				return nil, fmt.Errorf("Parse: %q: %w", t, ErrInvalidTriplet)
			}
			l.triplets = append(l.triplets, t)
		}
	}

	return l, nil
}

func runes(section string, in []string) ([]rune, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("Parse: %s: %w", section, ErrMissingData)
	}
	out := make([]rune, 0, len(in))
	for _, s := range in {
		r, err := letter(s)
		if err != nil {
			return nil, fmt.Errorf("Parse: %s: %w", section, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func letter(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidLetter)
	}
	return r, nil
}

// Mothers returns the mother letters as listed.
func (l *Lore) Mothers() []rune { return append([]rune(nil), l.mothers...) }

// Doubles returns the double letters as listed.
func (l *Lore) Doubles() []rune { return append([]rune(nil), l.doubles...) }

// Planet returns the planet and weekday of a double letter.
func (l *Lore) Planet(r rune) (Planet, bool) {
	p, ok := l.planets[r]
	return p, ok
}

// Sign returns the zodiac sign and month of a simple letter.
func (l *Lore) Sign(r rune) (Sign, bool) {
	s, ok := l.signs[r]
	return s, ok
}

// Sefirot returns the ten Sefirot in order.
func (l *Lore) Sefirot() []Sefirah { return append([]Sefirah(nil), l.sefirot...) }

// Directions returns the spokes in listed order.
func (l *Lore) Directions() []Direction { return append([]Direction(nil), l.directions...) }

// SpokeLength is the drawn length of a direction spoke.
func (l *Lore) SpokeLength() float64 { return l.spoke }

// Triplets returns the three-letter names in order.
func (l *Lore) Triplets() []string { return append([]string(nil), l.triplets...) }
