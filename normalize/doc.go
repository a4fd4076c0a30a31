// SPDX-License-Identifier: MIT

// Package normalize prepares raw text for symbol lookup.
//
// Lookup tables only carry base letters, so every caller runs text through a
// Normalizer first:
//
//   - Fold:  lowercase, strip combining marks (Unicode Mn), recompose (NFC).
//   - Marks: strip combining marks only; case is preserved.
//   - None:  identity.
//
// Hebrew niqqud and cantillation, Arabic tashkeel and Greek tonos/breathing
// marks are all Mn and disappear under Fold and Marks; precomposed letters such
// as "ά" or "أ" decompose first, so only their base letter survives.
//
// IsIgnorable classifies runes that never carry a value (whitespace,
// punctuation, controls and symbols such as the Hebrew maqaf or Arabic comma).
package normalize
