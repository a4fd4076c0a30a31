// SPDX-License-Identifier: MIT

// Package corpus supplies the text the calculators run over.
//
// A Corpus is a list of chapters, each a list of verses, loaded from the
// JSON shape
//
//	{"text": [["verse", "verse", ...], ["verse", ...], ...]}
//
// Other top-level keys are ignored. A document that does not match fails
// with ErrMalformedCorpus; there is no partial recovery. Verses iterates
// chapter by chapter, verse by verse, in source order.
//
// Default returns the embedded text of the 72 three-letter names, as a whole
// and split into rows. ReadLines collects interactive input up to a
// sentinel line such as "END".
package corpus
