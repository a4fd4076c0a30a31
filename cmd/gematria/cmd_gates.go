// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/classify"
	"github.com/katalvlaran/gematria/gates"
	"github.com/katalvlaran/gematria/lore"
	"github.com/katalvlaran/gematria/report/diagram"
)

var errBadLetter = errors.New("--letter must be a single letter")

func (a *app) lattice(opts ...gates.Option) (*gates.Lattice, error) {
	enc, err := a.encoder(alphabet.Strict)
	if err != nil {
		return nil, err
	}
	l, err := gates.Build(a.tbl, append([]gates.Option{gates.WithNameEncoder(enc)}, opts...)...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("lattice built", "letters", len(l.Nodes()), "gates", l.Len(), "ordered", l.Ordered())
	return l, nil
}

func newGatesCmd(a *app) *cobra.Command {
	var (
		ordered  bool
		limit    int
		letter   string
		analysis bool
	)
	cmd := &cobra.Command{
		Use:   "gates",
		Short: "The gates: every pairing of two letters, numbered",
		Long: `gates lists C(n,2) letter pairs (231 for Hebrew), or n·(n−1) ordered
pairs with --ordered, each with the sum of its letter values and the ratio of
its letters' name values. --analysis adds the name values and their
difference.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []gates.Option
			if ordered {
				opts = append(opts, gates.WithOrdered())
			}
			l, err := a.lattice(opts...)
			if err != nil {
				return err
			}

			gs := l.Gates()
			if letter != "" {
				r, size := utf8.DecodeRuneInString(letter)
				if size != len(letter) {
					return fmt.Errorf("%q: %w", letter, errBadLetter)
				}
				gs = l.Incident(r)
			}
			if limit > 0 && limit < len(gs) {
				gs = gs[:limit]
			}

			w := a.writer(cmd)
			w.Section("GATES")
			w.Note(fmt.Sprintf("Total gates: %d, shown: %d", l.Len(), len(gs)))
			if analysis {
				return w.GateAnalysis(gs)
			}
			return w.Gates(gs)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&ordered, "ordered", false, "ordered pairs (462 for Hebrew)")
	f.IntVar(&limit, "limit", 0, "show at most n gates (0 = all)")
	f.StringVar(&letter, "letter", "", "only gates touching this letter")
	f.BoolVar(&analysis, "analysis", false, "print name values and differences")
	return cmd
}

func newGeometryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "geometry",
		Short: "The gate count against 216 (6³)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := a.lattice()
			if err != nil {
				return err
			}
			return a.writer(cmd).Comparison(gates.Compare(l))
		},
	}
}

func newDiagramCmd(a *app) *cobra.Command {
	var (
		out      string
		triplets bool
	)
	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Write the circle diagram of letters, gates and Sefirot as SVG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := a.lattice()
			if err != nil {
				return err
			}

			p, err := classify.SeferYetzirah(a.tbl)
			if err != nil {
				// other alphabets have no mothers or doubles: draw every letter as simple
				a.log.Info("no classification for table", "table", a.tbl.Name(), "err", err)
				if p, err = classify.New(a.tbl.Letters(), nil, nil); err != nil {
					return err
				}
			}

			dc := a.cfg.Diagram
			lr := lore.Default()
			opts := []diagram.Option{
				diagram.WithRadius(dc.Radius),
				diagram.WithInnerRadius(dc.InnerRadius),
				diagram.WithSpokeLength(dc.SpokeLength),
				diagram.WithStartAngle(dc.StartAngle),
				diagram.WithScale(dc.Scale),
			}
			if triplets || dc.Triplets {
				opts = append(opts, diagram.WithTriplets(lr.Triplets()))
			}

			scene, err := diagram.NewScene(l, p, lr, opts...)
			if err != nil {
				return err
			}

			fh, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := diagram.Render(fh, scene); err != nil {
				fh.Close()
				return err
			}
			if err := fh.Close(); err != nil {
				return err
			}

			a.log.Info("diagram written", "path", out, "gates", len(scene.Gates), "triplets", len(scene.Triplets))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Diagram written to %s\n", out)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&out, "out", "gematria.svg", "output SVG file")
	f.BoolVar(&triplets, "triplets", false, "draw the 72 three-letter names")
	return cmd
}
