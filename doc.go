// Package gematria is a set of numerology calculators over Hebrew, Greek,
// Arabic and Latin letters, built around the structures of the Sefer
// Yetzirah.
//
// What is in the box?
//
//   - Value tables: one immutable table per script, plus a merged table
//   - Normalization: case folding and diacritic stripping (niqqud, accents)
//   - Encoding: text → sequence of letter values, Strict or Lenient
//   - Aggregation: sum, exact product, inverses and ratios with an explicit
//     "infinity" for division by zero
//   - Gates: the 231 letter pairings (462 ordered) with per-gate metrics
//   - Classification: 3 mothers, 7 doubles, 12 simples and their
//     planet/weekday and zodiac/month correspondences
//   - Reports: verse records and listings as text, the circle diagram as SVG
//
// The pipeline reads left to right:
//
//	raw text → normalize → encode (alphabet.Table) → aggregate | gates → report
//
// Packages:
//
//	alphabet/       value tables, Policy, embedded data
//	normalize/      Fold, Marks, None, IsIgnorable
//	encode/         Encoder, Sequence
//	aggregate/      Aggregate, Quotient
//	gates/          Build, Lattice, Compare
//	classify/       Partition, SeferYetzirah, Correspondences
//	lore/           mothers, doubles, Sefirot, directions, the 72 names
//	corpus/         JSON verse corpora, line input, acrostics
//	report/         text records
//	report/diagram/ circle layout and SVG rendering
//	cmd/gematria/   the command-line tool
//
// Quick start:
//
//	enc := encode.New(alphabet.Hebrew())
//	seq, _ := enc.Encode("אדם")        // [1 4 40]
//	res, _ := aggregate.Aggregate(seq) // Sum 45, Product 160
//
//	l, _ := gates.Build(alphabet.Hebrew())
//	fmt.Println(l.Len())               // 231
package gematria
