// SPDX-License-Identifier: MIT
// Package: gematria/gates
//
// errors.go: sentinel errors for the gates package.
//
// Error policy:
//   • Callers branch with errors.Is; messages carry "Build: ..." context.
//   • Validation order in Build: table, size, membership, duplicates, names.

package gates

import "errors"

// ErrNilTable indicates Build received a nil table.
var ErrNilTable = errors.New("gates: nil table")

// ErrTooFewLetters indicates fewer than two letters to pair.
var ErrTooFewLetters = errors.New("gates: too few letters")

// ErrUnknownLetter indicates a letter absent from the table.
var ErrUnknownLetter = errors.New("gates: unknown letter")

// ErrDuplicateLetter indicates the same letter listed twice.
var ErrDuplicateLetter = errors.New("gates: duplicate letter")

// ErrSelfGate indicates an attempt to pair a letter with itself.
var ErrSelfGate = errors.New("gates: self gate")

// ErrDuplicateGate indicates a gate emitted twice.
var ErrDuplicateGate = errors.New("gates: duplicate gate")
