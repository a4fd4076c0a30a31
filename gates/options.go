// SPDX-License-Identifier: MIT
// Package: gematria/gates
//
// options.go: functional options for Build.
//
// Contract:
//   • Option constructors panic on meaningless input (nil/empty);
//     Build itself never panics and reports sentinel errors.
//   • Later options override earlier ones.

package gates

import "github.com/katalvlaran/gematria/encode"

// Option customizes Build.
type Option func(*config)

type config struct {
	ordered bool
	letters []rune
	names   *encode.Encoder
}

// WithOrdered emits all n·(n−1) ordered pairs instead of C(n,2).
func WithOrdered() Option {
	return func(c *config) { c.ordered = true }
}

// WithLetters restricts the lattice to letters, in the given order.
// Defaults to the table's canonical letters. Panics on an empty slice.
func WithLetters(letters []rune) Option {
	if len(letters) == 0 {
		panic("gates: WithLetters(empty)")
	}
	cp := make([]rune, len(letters))
	copy(cp, letters)
	return func(c *config) { c.letters = cp }
}

// WithNameEncoder sets the encoder used for spelled-out names.
// Defaults to a Strict encoder over the lattice table. Panics on nil.
func WithNameEncoder(enc *encode.Encoder) Option {
	if enc == nil {
		panic("gates: WithNameEncoder(nil)")
	}
	return func(c *config) { c.names = enc }
}
