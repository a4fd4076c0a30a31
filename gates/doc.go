// SPDX-License-Identifier: MIT

// Package gates enumerates the "gates" of an alphabet: every pairing of two
// distinct letters, the way Sefer Yetzirah arranges the 22 Hebrew letters
// into 231 gates.
//
// The gates of n letters are the edges of the complete graph K_n. Build emits
// them into a Lattice whose nodes are the letters in alphabet order:
//
//   - unordered (default): C(n,2) gates, i over positions, j > i (231 for n=22);
//   - ordered (WithOrdered): n·(n−1) permutations, j ≠ i (462 for n=22).
//
// Emission order is part of the contract: reports number gates by Gate.Index.
//
// Every gate carries derived metrics computed from the table:
//
//	ValueSum       = value(a) + value(b)
//	NameValueX     = Σ values of the spelled-out name of X
//	NameRatio      = NameValueA / NameValueB  (aggregate.Quotient; infinity when 0)
//	NameDifference = NameValueA − NameValueB
//
// A built Lattice is read-only; its catalogs are guarded by an RWMutex so
// one lattice may serve concurrent readers.
package gates
