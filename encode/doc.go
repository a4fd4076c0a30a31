// SPDX-License-Identifier: MIT

// Package encode turns text into an ordered sequence of letter values.
//
// Pipeline per call:
//
//	text ─▶ Normalizer ─▶ rune scan ─▶ Table.Resolve(policy) ─▶ Sequence
//
// Ignorable runes and zero values are dropped, order is preserved and
// len(Sequence) never exceeds the rune count of the input. An empty Sequence
// means "no data": callers skip aggregation instead of reporting zeros.
package encode
