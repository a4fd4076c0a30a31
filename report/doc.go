// SPDX-License-Identifier: MIT

// Package report renders calculator results as human-readable text records.
//
// A Writer wraps an io.Writer and offers one method per record kind (verse,
// letters, sefirot, gates, classification, ...). Writes are sequential; the
// first I/O error sticks and is returned by every later call, so callers
// may check once at the end.
//
// Section titles are styled with lipgloss when the destination is a
// terminal, and left plain otherwise so that piped output stays stable.
//
// The verse record is the reference format:
//
//	Verse: אדם
//	Verse letters: 3
//	Gematria:[1, 4, 40]
//	Gematria Items:3
//	Sum: 45
//	Product: 160
//	Inverse of Sum: 0.022222222222222223
//	Inverse of Product: 0.00625
//
// followed by a blank line. Undefined inverses read "infinity".
package report
