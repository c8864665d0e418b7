// SPDX-License-Identifier: MIT

// Command sqmatrix is an interactive square-matrix calculator.
//
// It reads two integer matrices from the console, then a line of operator
// tokens (+ - * < <= > >= == != transpose determinant trace diagonalize),
// prints the results and asks whether to continue.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/squarematrix/config"
	"github.com/katalvlaran/squarematrix/menu"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds flag values and the process-wide logger.
type cli struct {
	configPath string
	dispatch   string
	autofill   bool
	seed       int64
	color      bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "sqmatrix",
		Short: "Interactive square-matrix calculator",
		Long: `sqmatrix reads two square integer matrices and applies the operations you type.

Operations: + - * (arithmetic), < <= > >= == != (compare sums of elements),
transpose, determinant, trace, diagonalize.

With --dispatch chain (default) every operation whose symbol occurs anywhere in
the line runs once, in a fixed order. With --dispatch switch the line is split
on spaces and each token runs in the order typed.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runInteractive,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "sqmatrix.yaml", "path to the YAML config file")
	pf.StringVar(&c.dispatch, "dispatch", "", "dispatch mode: chain or switch (overrides config)")
	pf.BoolVar(&c.color, "color", false, "colorize headers (overrides config)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging to stderr")

	root.Flags().BoolVar(&c.autofill, "autofill", false, "generate random elements instead of reading them")
	root.Flags().Int64Var(&c.seed, "seed", 0, "random seed for --autofill (0 = time based)")

	root.AddCommand(newEvalCmd(c))

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dispatch") {
		cfg.Dispatch = c.dispatch
	}
	if flags.Changed("color") {
		cfg.Output.Color = c.color
	}
	if flags.Lookup("autofill") != nil && flags.Changed("autofill") {
		cfg.AutoFill.Enabled = c.autofill
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.AutoFill.Seed = c.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	c.logger, err = newLogger(cfg.Logging, c.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger.Debug("configuration loaded",
		zap.String("path", c.configPath),
		zap.String("dispatch", cfg.Dispatch),
		zap.Bool("autofill", cfg.AutoFill.Enabled))

	return nil
}

// newLogger builds a zap logger writing to stderr.
func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

func (c *cli) runInteractive(cmd *cobra.Command, args []string) error {
	d, err := menu.NewDispatcher(c.cfg.Dispatch, c.logger)
	if err != nil {
		return err
	}

	opts := []menu.AppOption{
		menu.WithLogger(c.logger),
		menu.WithStyler(menu.NewStyler(c.cfg.Output.Color)),
	}
	if af := c.cfg.AutoFill; af.Enabled {
		opts = append(opts, menu.WithAutoFill(af.Min, af.Max, af.Seed))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := menu.NewApp(cmd.InOrStdin(), cmd.OutOrStdout(), d, opts...)
	if err := app.Run(ctx); err != nil {
		c.logger.Error("session aborted", zap.Error(err))
		return err
	}

	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
