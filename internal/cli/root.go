// Package cli implements the stattools command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sartorproj/stattools/internal/config"
)

// app carries global flags and the state loaded before every command runs.
type app struct {
	cfgFile string
	debug   bool
	seed    uint64
	output  string

	cfg    *config.Global
	logger *slog.Logger
}

// NewRootCommand builds the stattools command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "stattools",
		Short: "Statistical helpers: logistic classification and hypothesis tests",
		Long: `stattools fits a logistic regression classifier, runs classical hypothesis
tests (t-test, chi-square, ANOVA, Pearson correlation) and summarizes CSV data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (default is ~/.stattools/config.yaml)")
	f.BoolVar(&a.debug, "debug", false, "enable debug logging")
	f.Uint64Var(&a.seed, "seed", 0, "random seed (overrides config)")
	f.StringVarP(&a.output, "output", "o", "", "output format: yaml or text (overrides config)")

	root.AddCommand(
		newClassifyCommand(a),
		newTTestCommand(a),
		newChiSquareCommand(a),
		newANOVACommand(a),
		newPearsonCommand(a),
		newSummaryCommand(a),
		newTransformCommand(a),
		newConfigCommand(a),
	)
	return root
}

// Execute is the entry point called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// load reads the configuration, applies flag overrides and sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = a.seed
	}
	if f.Changed("output") {
		cfg.Output = a.output
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	a.logger.Debug("configuration loaded",
		"config", a.cfgFile,
		"seed", cfg.Seed,
		"output", cfg.Output,
	)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
