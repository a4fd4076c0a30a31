// SPDX-License-Identifier: MIT
// Package: gematria/corpus
//
// corpus.go: Corpus, JSON loading, verse iteration and acrostics.
//
// Contract:
//   • Load rejects invalid JSON, a missing "text" key and non-string verses
//     with ErrMalformedCorpus.
//   • Verses yields every verse exactly once, in order; empty chapters are
//     skipped silently.
//   • A *Corpus is read-only after Load.

package corpus

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"sync"
)

// ErrMalformedCorpus indicates input that is not {"text": [[string...]...]}.
var ErrMalformedCorpus = errors.New("corpus: malformed corpus")

//go:embed data/names72.json
var names72 []byte

// Ref locates a verse; both fields are 1-based.
type Ref struct {
	Chapter int
	Verse   int
}

// String renders "chapter:verse".
func (r Ref) String() string { return fmt.Sprintf("%d:%d", r.Chapter, r.Verse) }

// Corpus is an ordered collection of chapters of verses.
type Corpus struct {
	chapters [][]string
}

type corpusFile struct {
	Text *[][]string `json:"text"`
}

// New wraps chapters (copied) in a Corpus.
func New(chapters [][]string) *Corpus {
	cp := make([][]string, len(chapters))
	for i, ch := range chapters {
		cp[i] = append([]string(nil), ch...)
	}
	return &Corpus{chapters: cp}
}

// Load decodes a corpus document from r.
func Load(r io.Reader) (*Corpus, error) {
	var f corpusFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("Load: %v: %w", err, ErrMalformedCorpus)
	}
	if f.Text == nil {
		return nil, fmt.Errorf("Load: no \"text\" key: %w", ErrMalformedCorpus)
	}
	return &Corpus{chapters: *f.Text}, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Corpus, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer fh.Close()

	c, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	return c, nil
}

var defaultCorpus = sync.OnceValues(func() (*Corpus, error) { return Load(bytes.NewReader(names72)) })

// Default returns the embedded 72-names text.
func Default() *Corpus {
	c, err := defaultCorpus()
	if err != nil {
		panic(err)
	}
	return c
}

// Chapters returns the number of chapters.
func (c *Corpus) Chapters() int { return len(c.chapters) }

// Len returns the number of verses across all chapters.
func (c *Corpus) Len() int {
	n := 0
	for _, ch := range c.chapters {
		n += len(ch)
	}
	return n
}

// Verses iterates (ref, verse) chapter then verse.
func (c *Corpus) Verses() iter.Seq2[Ref, string] {
	return func(yield func(Ref, string) bool) {
		for i, ch := range c.chapters {
			for j, v := range ch {
				if !yield(Ref{Chapter: i + 1, Verse: j + 1}, v) {
					return
				}
			}
		}
	}
}

// Acrostic concatenates the first n runes of every verse, in order.
// Shorter verses contribute what they have.
func (c *Corpus) Acrostic(n int) string {
	var b strings.Builder
	for _, v := range c.Verses() {
		rs := []rune(v)
		if len(rs) > n {
			rs = rs[:n]
		}
		b.WriteString(string(rs))
	}
	return b.String()
}
