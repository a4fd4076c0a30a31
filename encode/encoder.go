// SPDX-License-Identifier: MIT
// Package: gematria/encode
//
// encoder.go: Encoder, its options and the Sequence type.
//
// Contract:
//   • Encode never reorders values and never emits zeros.
//   • Strict failures wrap alphabet.ErrUnknownSymbol with the rune offset
//     (0-based, counted in the normalized text).
//   • An Encoder is immutable and safe for concurrent use.

package encode

import (
	"fmt"

	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/normalize"
)

const methodEncode = "Encode"

// Sequence is an ordered list of positive letter values.
type Sequence []int

// Len returns the number of values.
func (s Sequence) Len() int { return len(s) }

// Empty reports whether the sequence carries no data.
func (s Sequence) Empty() bool { return len(s) == 0 }

// Option customizes an Encoder.
type Option func(*config)

type config struct {
	policy     alphabet.Policy
	normalizer normalize.Normalizer
}

// WithPolicy selects the unknown-rune policy (default Lenient).
func WithPolicy(p alphabet.Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithNormalizer replaces the default normalize.Fold. Panics on nil.
func WithNormalizer(n normalize.Normalizer) Option {
	if n == nil {
		panic("encode: WithNormalizer(nil)")
	}
	return func(c *config) { c.normalizer = n }
}

// Encoder maps text to Sequences through one Table.
type Encoder struct {
	table *alphabet.Table
	cfg   config
}

// New returns an Encoder over table. Panics on a nil table.
func New(table *alphabet.Table, opts ...Option) *Encoder {
	if table == nil {
		panic("encode: New(nil table)")
	}
	cfg := config{policy: alphabet.Lenient, normalizer: normalize.Fold}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Encoder{table: table, cfg: cfg}
}

// Table returns the underlying table.
func (e *Encoder) Table() *alphabet.Table { return e.table }

// Policy returns the configured policy.
func (e *Encoder) Policy() alphabet.Policy { return e.cfg.policy }

// Normalize applies the configured normalizer.
func (e *Encoder) Normalize(text string) string { return e.cfg.normalizer(text) }

// Encode converts text into its value sequence.
func (e *Encoder) Encode(text string) (Sequence, error) {
	var (
		seq    Sequence
		offset int
	)
	for _, r := range e.cfg.normalizer(text) {
		s, err := e.table.Resolve(r, e.cfg.policy)
		if err != nil {
			return nil, fmt.Errorf("%s: rune %d: %w", methodEncode, offset, err)
		}
		offset++
		if s.Ignorable || s.Value == 0 {
			continue
		}
		seq = append(seq, s.Value)
	}
	return seq, nil
}

// Sum returns the total value of text (the word's gematria).
func (e *Encoder) Sum(text string) (int, error) {
	seq, err := e.Encode(text)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, v := range seq {
		total += v
	}
	return total, nil
}

// Decode maps each value back to the first canonical letter carrying it.
// Values without a letter are skipped.
func (e *Encoder) Decode(seq Sequence) string {
	byValue := make(map[int]rune, e.table.Len())
	for _, r := range e.table.Letters() {
		s, _ := e.table.Lookup(r)
		if _, seen := byValue[s.Value]; !seen {
			byValue[s.Value] = r
		}
	}

	out := make([]rune, 0, len(seq))
	for _, v := range seq {
		if r, ok := byValue[v]; ok {
			out = append(out, r)
		}
	}
	return string(out)
}
