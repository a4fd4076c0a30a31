// SPDX-License-Identifier: MIT

// Package classify partitions an alphabet into the three Sefer Yetzirah
// categories: mothers, doubles and simples (the remainder).
//
// A Partition is validated at construction: the groups are pairwise disjoint,
// cover the alphabet exactly and are each sorted by alphabet position. A bad
// configuration fails once, at startup, with ErrOverlap, ErrNotInAlphabet or
// ErrDuplicate, instead of silently yielding a wrong count.
//
// For the 22 Hebrew letters the sizes are 3/7/12 and the simples begin with ה.
package classify
