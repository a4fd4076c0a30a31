// SPDX-License-Identifier: MIT
// Package: gematria/alphabet
//
// policy.go: handling of runes missing from a table.

package alphabet

import (
	"fmt"
	"strings"
)

// Policy decides what happens to a rune that is neither in the table nor
// ignorable.
type Policy int

const (
	// Lenient drops unknown runes (value 0).
	Lenient Policy = iota
	// Strict rejects unknown runes with ErrUnknownSymbol.
	Strict
)

// String returns the lower-case policy name.
func (p Policy) String() string {
	switch p {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses "strict" or "lenient" (case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Lenient, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
	}
}
