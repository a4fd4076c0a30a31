// SPDX-License-Identifier: MIT
// Package: gematria/classify
//
// errors.go: sentinel errors for partition construction.

package classify

import "errors"

// ErrOverlap indicates a letter listed as both mother and double.
var ErrOverlap = errors.New("classify: letter in more than one group")

// ErrNotInAlphabet indicates a mother or double missing from the alphabet.
var ErrNotInAlphabet = errors.New("classify: letter not in alphabet")

// ErrDuplicate indicates a letter repeated within one list.
var ErrDuplicate = errors.New("classify: duplicate letter")

// ErrNilTable is returned when a nil table is passed.
var ErrNilTable = errors.New("classify: table is nil")
