// SPDX-License-Identifier: MIT
// Package: gematria/lore
//
// errors.go: sentinel errors for lore data loading.

package lore

import "errors"

// ErrInvalidLetter indicates a letter field that is not exactly one rune.
var ErrInvalidLetter = errors.New("lore: letter must be a single rune")

// ErrInvalidTriplet indicates a triplet that is not exactly three runes.
var ErrInvalidTriplet = errors.New("lore: triplet must be three runes")

// ErrMissingData indicates a required section is empty.
var ErrMissingData = errors.New("lore: missing data")
