// SPDX-License-Identifier: MIT
// Package: gematria/normalize
//
// normalize.go: text normalizers and the ignorable-rune predicate.
//
// Contract:
//   • Normalizers are pure and safe for concurrent use.
//   • Fold(s) == Marks(lowercase(s)); both drop every unicode.Mn rune.
//   • IsIgnorable never reports true for a letter.

package normalize

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer transforms text before lookup.
type Normalizer func(string) string

// Mode names a normalization strategy.
type Mode string

// Supported modes.
const (
	ModeFold  Mode = "fold"
	ModeMarks Mode = "marks"
	ModeNone  Mode = "none"
)

// ErrUnknownMode is returned by For for an unsupported mode name.
var ErrUnknownMode = errors.New("normalize: unknown mode")

// stripMarks decomposes, removes nonspacing marks and recomposes what is left.
// transform.Chain is stateful, so a fresh chain is built per call.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold lowercases s and strips combining marks.
func Fold(s string) string {
	return Marks(strings.ToLower(s))
}

// Marks strips combining marks from s and keeps case.
func Marks(s string) string {
	out, _, err := transform.String(stripMarks(), s)
	if err != nil {
		// transform only fails on invalid UTF-8 state; keep the input untouched.
		return s
	}
	return out
}

// None returns s unchanged.
func None(s string) string { return s }

// For returns the Normalizer for mode. The empty mode selects Fold.
func For(mode Mode) (Normalizer, error) {
	switch mode {
	case ModeFold, "":
		return Fold, nil
	case ModeMarks:
		return Marks, nil
	case ModeNone:
		return None, nil
	default:
		return nil, fmt.Errorf("For(%q): %w", mode, ErrUnknownMode)
	}
}

// IsIgnorable reports whether r never contributes a value: whitespace,
// punctuation, control characters, symbols and stray combining marks.
func IsIgnorable(r rune) bool {
	return unicode.IsSpace(r) ||
		unicode.IsPunct(r) ||
		unicode.IsControl(r) ||
		unicode.IsSymbol(r) ||
		unicode.Is(unicode.Mn, r)
}
