// SPDX-License-Identifier: MIT
// Package: gematria/classify
//
// correspondence.go: planets/weekdays for doubles, zodiac/months for simples.

package classify

import "github.com/katalvlaran/gematria/lore"

// Unknown fills a correspondence the lore does not define.
const Unknown = "Unknown"

// Correspondence pairs a letter with its planet and weekday (doubles) or its
// zodiac sign and month (simples).
type Correspondence struct {
	Letter   rune
	Category Category
	Planet   string
	Weekday  string
	Zodiac   string
	Month    string
}

// Correspondences lists the doubles then the simples of p, in partition
// order, with the data found in l. Missing entries read Unknown.
func Correspondences(p Partition, l *lore.Lore) []Correspondence {
	out := make([]Correspondence, 0, len(p.Doubles)+len(p.Simples))
	for _, r := range p.Doubles {
		c := Correspondence{Letter: r, Category: Double, Planet: Unknown, Weekday: Unknown}
		if pl, ok := l.Planet(r); ok {
			c.Planet, c.Weekday = pl.Name, pl.Weekday
		}
		out = append(out, c)
	}
	for _, r := range p.Simples {
		c := Correspondence{Letter: r, Category: Simple, Zodiac: Unknown, Month: Unknown}
		if s, ok := l.Sign(r); ok {
			c.Zodiac, c.Month = s.Zodiac, s.Month
		}
		out = append(out, c)
	}
	return out
}
