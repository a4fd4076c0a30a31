// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/classify"
	"github.com/katalvlaran/gematria/gates"
	"github.com/katalvlaran/gematria/lore"
	"github.com/katalvlaran/gematria/report"
)

func newLettersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "letters",
		Short: "Each letter with its value, spelled-out name and name value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc, err := a.encoder(alphabet.Strict)
			if err != nil {
				return err
			}
			rows := make([]report.LetterRow, 0, a.tbl.Len())
			for _, r := range a.tbl.Letters() {
				s, _ := a.tbl.Lookup(r)
				nv, err := gates.NameValue(enc, s.Name)
				if err != nil {
					return err
				}
				rows = append(rows, report.LetterRow{Symbol: s, NameValue: nv})
			}
			return a.writer(cmd).Letters(rows)
		},
	}
}

func newSefirotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sefirot",
		Short: "The ten Sefirot and the values of their Hebrew names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc, err := a.encoder(alphabet.Strict)
			if err != nil {
				return err
			}
			var rows []report.SefirahRow
			for _, s := range lore.Default().Sefirot() {
				v, err := enc.Sum(s.Hebrew)
				if err != nil {
					return err
				}
				rows = append(rows, report.SefirahRow{Sefirah: s, Value: v})
			}
			return a.writer(cmd).Sefirot(rows)
		},
	}
}

func newTripletsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "triplets",
		Short: "Values of the 72 three-letter names and the ratio of the first two",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc, err := a.encoder(alphabet.Lenient)
			if err != nil {
				return err
			}
			var rows []report.TripletRow
			for _, t := range lore.Default().Triplets() {
				v, err := enc.Sum(t)
				if err != nil {
					return err
				}
				rows = append(rows, report.TripletRow{Text: t, Sum: v})
			}
			return a.writer(cmd).Triplets(rows)
		},
	}
}

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Mothers, doubles and simples with their correspondences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := classify.SeferYetzirah(a.tbl)
			if err != nil {
				return err
			}
			w := a.writer(cmd)
			w.Section("CLASSIFICATION")
			w.Classification(p)
			w.Blank()
			w.Section("CORRESPONDENCES")
			return w.Correspondences(classify.Correspondences(p, lore.Default()))
		},
	}
}
