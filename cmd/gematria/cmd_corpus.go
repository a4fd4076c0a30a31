// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gematria/aggregate"
	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/corpus"
)

// acrosticRunes is how many runes of each verse the acrostic takes.
const acrosticRunes = 2

func (a *app) corpus(path string) (*corpus.Corpus, error) {
	if path == "" {
		a.log.Debug("using embedded corpus")
		return corpus.Default(), nil
	}
	c, err := corpus.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Info("corpus loaded", "path", path, "chapters", c.Chapters(), "verses", c.Len())
	return c, nil
}

func newVersesCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "verses",
		Short: "Sum, product and inverses of every verse in a corpus",
		Long: `verses prints one record per verse of a JSON corpus ({"text": [[...]]}),
or of the embedded 72-names text when --corpus is not given. Verses with no
valued letters are skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc, err := a.encoder(alphabet.Lenient)
			if err != nil {
				return err
			}
			c, err := a.corpus(path)
			if err != nil {
				return err
			}

			w := a.writer(cmd)
			for ref, verse := range c.Verses() {
				seq, err := enc.Encode(verse)
				if err != nil {
					a.log.Warn("verse skipped", "ref", ref.String(), "err", err)
					continue
				}
				res, ok := aggregate.Aggregate(seq)
				if !ok {
					a.log.Debug("verse has no values", "ref", ref.String())
					continue
				}
				if err := w.Verse(verse, seq, res); err != nil {
					return err
				}
			}
			return w.Err()
		},
	}
	cmd.Flags().StringVar(&path, "corpus", "", "JSON corpus file")
	return cmd
}

func newRatiosCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "ratios",
		Short: "Consecutive value ratios per verse, then the verse acrostic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc, err := a.encoder(alphabet.Lenient)
			if err != nil {
				return err
			}
			c, err := a.corpus(path)
			if err != nil {
				return err
			}

			w := a.writer(cmd)
			for ref, verse := range c.Verses() {
				seq, err := enc.Encode(verse)
				if err != nil {
					a.log.Warn("verse skipped", "ref", ref.String(), "err", err)
					continue
				}
				if err := w.Ratios(verse, aggregate.Ratios(seq)); err != nil {
					return err
				}
			}
			return w.Acrostic(c.Acrostic(acrosticRunes))
		},
	}
	cmd.Flags().StringVar(&path, "corpus", "", "JSON corpus file")
	return cmd
}
