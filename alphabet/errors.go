// SPDX-License-Identifier: MIT
// Package: gematria/alphabet
//
// errors.go: sentinel errors for the alphabet package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach context (method, rune, file) with %w wrapping.

package alphabet

import "errors"

// ErrUnknownSymbol indicates a rune that is neither in the table nor
// ignorable, looked up under the Strict policy.
var ErrUnknownSymbol = errors.New("alphabet: unknown symbol")

// ErrUnknownTable indicates ByName received a name with no built-in table.
var ErrUnknownTable = errors.New("alphabet: unknown table")

// ErrDuplicateSymbol indicates a rune defined twice within (or across merged) tables.
var ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

// ErrInvalidSymbol indicates a symbol entry that is not exactly one letter,
// or a negative value.
var ErrInvalidSymbol = errors.New("alphabet: invalid symbol")

// ErrEmptyTable indicates a table without a name or without letters.
var ErrEmptyTable = errors.New("alphabet: empty table")

// ErrUnknownPolicy indicates ParsePolicy received an unsupported name.
var ErrUnknownPolicy = errors.New("alphabet: unknown policy")
