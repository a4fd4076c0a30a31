// SPDX-License-Identifier: MIT

// Package aggregate reduces value sequences: sum, exact product, inverses and
// ratios.
//
// Products use math/big, so long verses (hundreds of letters worth up to
// 1000 each) never lose precision. Every division goes through Quotient,
// whose Infinite flag replaces a division by zero; nothing here returns an
// error or panics on a zero denominator.
//
// Aggregate is defined for non-empty sequences only and reports ok=false
// otherwise, so callers skip the record rather than print zeros.
package aggregate
