// SPDX-License-Identifier: MIT

// Package alphabet holds the immutable value tables that map letters to their
// numeric (gematria) values.
//
// A Table is built once, either from the embedded data files (ByName, Hebrew,
// ...) or explicitly via New/Merge, and is read-only afterwards: it can be
// shared freely between encoders, gate lattices and goroutines. Tables never
// live in package-level mutable state; callers pass the table they want, so
// Hebrew and Greek tables coexist side by side.
//
// Every table has:
//
//   - a canonical, ordered letter list (Letters): the 22 Hebrew letters, the
//     27 Greek numerals, the 28 abjad letters, the 26 Latin letters;
//   - lookup-only variants (final forms, hamza forms, final sigma);
//   - optional spelled-out names per letter (Hebrew and Greek).
//
// Unknown runes are handled by an explicit Policy chosen per call:
//
//	Lenient: unknown runes contribute 0 and are dropped.
//	Strict:  unknown runes fail with ErrUnknownSymbol.
//
// Ignorable runes (see normalize.IsIgnorable) resolve to 0 under both policies.
//
// Built-in tables: hebrew, hebrew-gadol, greek, arabic, latin, combined.
package alphabet
