// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gematria/alphabet"
	"github.com/katalvlaran/gematria/encode"
	"github.com/katalvlaran/gematria/internal/config"
	"github.com/katalvlaran/gematria/internal/logging"
	"github.com/katalvlaran/gematria/normalize"
	"github.com/katalvlaran/gematria/report"
)

// app is the state shared by every subcommand once the root has loaded
// configuration.
type app struct {
	configPath string
	table      string
	policy     string
	normalize  string
	logLevel   string
	logFile    string

	cfg      *config.Config
	log      *slog.Logger
	closeLog func() error
	tbl      *alphabet.Table
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Discard(), closeLog: func() error { return nil }}

	root := &cobra.Command{
		Use:   "gematria",
		Short: "Letter values, verse statistics and the 231 gates",
		Long: `gematria maps Hebrew, Greek, Arabic and Latin letters to their numeric
values, aggregates texts and verses, and explores the Sefer Yetzirah
structures: mothers, doubles and simples, the 231 gates and their diagram.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.closeLog()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.table, "table", "", "value table: "+fmt.Sprint(alphabet.Names()))
	pf.StringVar(&a.policy, "policy", "", "unknown-symbol policy: strict or lenient (default per command)")
	pf.StringVar(&a.normalize, "normalize", "", "normalization: fold, marks or none")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.logFile, "log-file", "", "also write JSON logs to this file")

	root.AddCommand(
		newSumCmd(a),
		newWordCmd(a),
		newVersesCmd(a),
		newRatiosCmd(a),
		newLettersCmd(a),
		newSefirotCmd(a),
		newTripletsCmd(a),
		newGatesCmd(a),
		newGeometryCmd(a),
		newClassifyCmd(a),
		newDiagramCmd(a),
	)
	return root
}

// setup loads configuration, starts logging and resolves the table.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	overrides := make(map[string]any)
	flags := cmd.Flags()
	for flag, key := range map[string]string{
		"table":     "table",
		"policy":    "policy",
		"normalize": "normalize",
		"log-level": "log.level",
		"log-file":  "log.file",
	} {
		if flags.Changed(flag) {
			v, _ := flags.GetString(flag)
			overrides[key] = v
		}
	}

	cfg, err := config.Load(a.configPath, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, closeLog, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	a.log, a.closeLog = log, closeLog

	tbl, err := alphabet.ByName(cfg.Table)
	if err != nil {
		return err
	}
	a.tbl = tbl

	a.log.Debug("configured", "command", cmd.Name(), "table", tbl.Name(), "letters", tbl.Len(),
		"normalize", cfg.Normalize, "policy", cfg.Policy)
	return nil
}

// encoder returns an encoder over the configured table. fallback is the
// command's own policy, used unless one was configured.
func (a *app) encoder(fallback alphabet.Policy) (*encode.Encoder, error) {
	policy := fallback
	if a.cfg.Policy != "" {
		p, err := alphabet.ParsePolicy(a.cfg.Policy)
		if err != nil {
			return nil, err
		}
		policy = p
	}
	norm, err := normalize.For(normalize.Mode(a.cfg.Normalize))
	if err != nil {
		return nil, err
	}
	return encode.New(a.tbl, encode.WithPolicy(policy), encode.WithNormalizer(norm)), nil
}

func (a *app) writer(cmd *cobra.Command) *report.Writer {
	return report.New(cmd.OutOrStdout())
}
