// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/corpus"
	"github.com/katalvlaran/gematria/report"
)

func newSumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sum [text...]",
		Short: "Value of a text (arguments, or stdin lines until the sentinel)",
		Long: `sum prints the gematria value of its arguments joined by spaces. Without
arguments it reads lines from stdin until a line equal to the sentinel
(END by default). Unknown symbols are an error unless --policy lenient.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := a.encoder(alphabet.Strict)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				lines, err := corpus.ReadLines(cmd.InOrStdin(), a.cfg.Sentinel)
				if err != nil {
					return err
				}
				text = strings.Join(lines, "")
				a.log.Debug("read input", "lines", len(lines))
			}

			v, err := enc.Sum(text)
			if err != nil {
				return err
			}
			return a.writer(cmd).Sum(v)
		},
	}
}

func newWordCmd(a *app) *cobra.Command {
	var suffix string
	cmd := &cobra.Command{
		Use:   "word <word>",
		Short: "Value of a word, optionally with a suffix such as אל",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := a.encoder(alphabet.Strict)
			if err != nil {
				return err
			}
			rec := report.WordRecord{Base: args[0], Suffix: suffix}
			if rec.BaseSum, err = enc.Sum(rec.Base); err != nil {
				return err
			}
			if rec.SuffixSum, err = enc.Sum(rec.Suffix); err != nil {
				return err
			}
			if rec.CombinedSum, err = enc.Sum(rec.Base + rec.Suffix); err != nil {
				return err
			}
			return a.writer(cmd).Word(rec)
		},
	}
	cmd.Flags().StringVar(&suffix, "suffix", "", "suffix appended to the word")
	return cmd
}
