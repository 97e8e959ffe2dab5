// Package main provides the CLI entry point for xvgplot-go.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot"
	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/config"
	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"
)

// flags shared by every command
var (
	configPath     string
	maxHeaderLines int
	jobs           int
	skipInvalid    bool
	logLevel       string
	logFormat      string
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	plotCmd := newPlotCmd()

	rootCmd := &cobra.Command{
		Use:   "xvgplot [input.xvg...]",
		Short: "Plot and summarize GROMACS xvg files",
		Long: `xvgplot-go reads GROMACS xvg files (gmx energy, gmx density, ...)
and plots every series on shared axes. Subcommands export the parsed
data or print per-file statistics.

An input file named like a subcommand (plot, export, stats, help,
completion) is taken as that subcommand; use "xvgplot plot <files>"
to plot such files.`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          plotCmd.RunE,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.IntVar(&maxHeaderLines, "max-header-lines", 30, "Lines scanned for axis and legend labels")
	pf.IntVarP(&jobs, "jobs", "j", 1, "Number of files parsed concurrently")
	pf.BoolVar(&skipInvalid, "skip-invalid", false, "Warn and skip files that fail to parse")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	addPlotFlags(rootCmd)
	rootCmd.AddCommand(plotCmd, newExportCmd(), newStatsCmd())
	return rootCmd
}

// loadConfig loads the config file and applies flags set on the command line.
// overrides apply command-specific flags before validation.
func loadConfig(cmd *cobra.Command, overrides ...func(*cobra.Command, *config.Config)) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("max-header-lines") {
		cfg.Parse.MaxHeaderLines = maxHeaderLines
	}
	if flags.Changed("jobs") {
		cfg.Parse.Jobs = jobs
	}
	if flags.Changed("skip-invalid") {
		cfg.Parse.SkipInvalid = skipInvalid
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	for _, o := range overrides {
		o(cmd, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// parseInputs parses every path. Without --skip-invalid the first failure
// aborts the run; with it, failures are logged and left out.
func parseInputs(ctx context.Context, cfg *config.Config, logger *slog.Logger, paths []string) ([]*models.ParsedSeries, error) {
	opts := cfg.ParseOptions()
	opts.Logger = logger

	results := xvgplot.ParseFiles(ctx, paths, opts)
	if !cfg.Parse.SkipInvalid {
		if err := xvgplot.FirstError(results); err != nil {
			return nil, err
		}
	}

	for _, r := range results {
		if r.Err != nil {
			logger.Warn("skipping file", slog.String("file", r.Path), slog.String("error", r.Err.Error()))
		}
	}

	series := xvgplot.Succeeded(results)
	if len(series) == 0 {
		return nil, fmt.Errorf("no input file could be parsed")
	}
	return series, nil
}

func setup(cmd *cobra.Command, overrides ...func(*cobra.Command, *config.Config)) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(cmd, overrides...)
	if err != nil {
		return nil, nil, err
	}
	return cfg, cfg.Logging.NewLogger(cmd.ErrOrStderr()), nil
}
