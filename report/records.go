// SPDX-License-Identifier: MIT
// Package: gematria/report
//
// records.go: one method per record kind.

package report

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gematria/aggregate"
	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/classify"
	"github.com/katalvlaran/gematria/encode"
	"github.com/katalvlaran/gematria/gates"
	"github.com/katalvlaran/gematria/lore"
)

// ratioDecimals is the precision of ratios in gate and triplet listings.
const ratioDecimals = 2

// LetterRow is one line of the letter table.
type LetterRow struct {
	Symbol    alphabet.Symbol
	NameValue int
}

// SefirahRow is a Sefirah with the value of its Hebrew name.
type SefirahRow struct {
	lore.Sefirah
	Value int
}

// TripletRow is a three-letter name with its value.
type TripletRow struct {
	Text string
	Sum  int
}

// WordRecord is a word, a suffix and their values.
type WordRecord struct {
	Base, Suffix                    string
	BaseSum, SuffixSum, CombinedSum int
}

// Sum prints the value of a text.
func (w *Writer) Sum(value int) error {
	w.printf("Gematria value: %d\n", value)
	return w.err
}

// Verse prints the full record of one verse.
func (w *Writer) Verse(text string, seq encode.Sequence, res aggregate.Result) error {
	w.printf("Verse: %s\n", text)
	w.printf("Verse letters: %d\n", utf8.RuneCountInString(strings.ReplaceAll(text, " ", "")))
	w.printf("Gematria:%s\n", List(seq))
	w.printf("Gematria Items:%d\n", seq.Len())
	w.printf("Sum: %d\n", res.Sum)
	w.printf("Product: %s\n", res.Product.String())
	w.printf("Inverse of Sum: %s\n", res.InverseSum)
	w.printf("Inverse of Product: %s\n", res.InverseProduct)
	w.println("")
	return w.err
}

// Ratios prints a verse with its consecutive ratios.
func (w *Writer) Ratios(text string, rs []aggregate.Quotient) error {
	parts := make([]string, len(rs))
	for i, q := range rs {
		parts[i] = q.String()
	}
	w.printf("Verse: %s\n", text)
	w.printf("Ratios: [%s]\n", strings.Join(parts, ", "))
	w.println("")
	return w.err
}

// Acrostic prints the concatenated verse openings.
func (w *Writer) Acrostic(s string) error {
	w.printf("Acrostic: %s\n", s)
	return w.err
}

// Letters prints letter, value, name and name value.
func (w *Writer) Letters(rows []LetterRow) error {
	for _, r := range rows {
		w.printf("Letter: %c (Value: %d), Name: %s, Name Gematria: %d\n",
			r.Symbol.Rune, r.Symbol.Value, r.Symbol.Name, r.NameValue)
	}
	return w.err
}

// Sefirot prints each Sefirah with the value of its Hebrew name.
func (w *Writer) Sefirot(rows []SefirahRow) error {
	for _, r := range rows {
		w.printf("%d. %s / %s => Gematria: %d\n", r.Index, r.Name, r.Hebrew, r.Value)
	}
	return w.err
}

// Gates prints numbered gates with their value sum and name ratio.
func (w *Writer) Gates(gs []gates.Gate) error {
	for _, g := range gs {
		w.printf("%d. Gate (%c, %c) => Basic Sum: %d, Name Ratio: %s\n",
			g.Index, g.A.Rune, g.B.Rune, g.ValueSum, g.NameRatio.Format(ratioDecimals))
	}
	return w.err
}

// GateAnalysis prints every metric of each gate.
func (w *Writer) GateAnalysis(gs []gates.Gate) error {
	for _, g := range gs {
		w.printf("%d. Gate (%c, %c): basic sum=%d, names=%d/%d, name ratio=%s, name difference=%d\n",
			g.Index, g.A.Rune, g.B.Rune, g.ValueSum, g.NameValueA, g.NameValueB,
			g.NameRatio.Format(ratioDecimals), g.NameDifference)
	}
	return w.err
}

// Classification prints the three groups with their sizes.
func (w *Writer) Classification(p classify.Partition) error {
	w.printf("%d Mothers: %s\n", len(p.Mothers), Runes(p.Mothers))
	w.printf("%d Doubles: %s\n", len(p.Doubles), Runes(p.Doubles))
	w.printf("%d Simples: %s\n", len(p.Simples), Runes(p.Simples))
	return w.err
}

// Correspondences prints planet/weekday and zodiac/month lines.
func (w *Writer) Correspondences(cs []classify.Correspondence) error {
	for _, c := range cs {
		if c.Category == classify.Double {
			w.printf("Letter %c: Planet = %s, Weekday = %s\n", c.Letter, c.Planet, c.Weekday)
			continue
		}
		w.printf("Letter %c: Zodiac = %s, Month = %s\n", c.Letter, c.Zodiac, c.Month)
	}
	return w.err
}

// Comparison prints the gate count against the cube number.
func (w *Writer) Comparison(c gates.CubeComparison) error {
	w.printf("Gates => %d\n", c.Gates)
	w.printf("Cube (6^3) => %d\n", c.Cube)
	w.printf("Difference => %d\n", c.Difference)
	w.printf("Ratio => %s\n", c.Ratio.Format(4))
	return w.err
}

// Triplets prints each triplet sum, then the ratio of the first two.
func (w *Writer) Triplets(rows []TripletRow) error {
	for i, r := range rows {
		w.printf("%d. %s => %d\n", i+1, r.Text, r.Sum)
	}
	if len(rows) >= 2 {
		q := aggregate.Ratio(int64(rows[0].Sum), int64(rows[1].Sum))
		w.printf("Triplets: %s, %s => Ratio: %s\n", rows[0].Text, rows[1].Text, q.Format(ratioDecimals))
	}
	return w.err
}

// Word prints a base word, its suffix and the combined value.
func (w *Writer) Word(r WordRecord) error {
	w.printf("Base word: %s => Gematria: %d\n", r.Base, r.BaseSum)
	if r.Suffix != "" {
		w.printf("Suffix: %s => Gematria: %d\n", r.Suffix, r.SuffixSum)
		w.printf("Combined Gematria: %d\n", r.CombinedSum)
	}
	return w.err
}

// List renders a sequence as "[a, b, c]".
func List(seq encode.Sequence) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Runes renders runes separated by spaces.
func Runes(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
