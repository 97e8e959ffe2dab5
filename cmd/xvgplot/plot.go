package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/config"
	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/plot"
)

var (
	plotOutput      string
	plotAverage     bool
	plotLegendFrom  string
	plotTransparent bool
	plotGrid        bool
	plotDPI         float64
	plotFraction    float64
	plotTitle       string
)

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [input.xvg...]",
		Short: "Plot xvg files on shared axes",
		Long: `Plot every input series on shared axes. The axes are labeled with the
first file's x and y labels. The image format follows the output extension
(.png or .svg).`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPlot,
	}
	addPlotFlags(cmd)
	return cmd
}

func addPlotFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&plotOutput, "output", "o", "output.png", "Output image path (.png or .svg)")
	f.BoolVar(&plotAverage, "average", false, "Append the mean to each legend entry")
	f.StringVar(&plotLegendFrom, "legend-from", "file", "Legend text: file or legend")
	f.BoolVar(&plotTransparent, "transparent", true, "Transparent background")
	f.BoolVar(&plotGrid, "grid", true, "Draw dashed grid lines")
	f.Float64Var(&plotDPI, "dpi", 300, "Output resolution")
	f.Float64Var(&plotFraction, "fraction", 1, "Share of the text width the figure spans")
	f.StringVar(&plotTitle, "title", "", "Figure title")
}

// applyPlotFlags copies plot flags set on the command line into cfg.
func applyPlotFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("output") {
		cfg.Plot.Output = plotOutput
	}
	if f.Changed("average") {
		cfg.Plot.Average = plotAverage
	}
	if f.Changed("legend-from") {
		cfg.Plot.LegendFrom = plotLegendFrom
	}
	if f.Changed("transparent") {
		cfg.Plot.Transparent = plotTransparent
	}
	if f.Changed("grid") {
		cfg.Plot.Grid = plotGrid
	}
	if f.Changed("dpi") {
		cfg.Plot.DPI = plotDPI
	}
	if f.Changed("fraction") {
		cfg.Plot.Fraction = plotFraction
	}
	if f.Changed("title") {
		cfg.Plot.Title = plotTitle
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, applyPlotFlags)
	if err != nil {
		return err
	}

	series, err := parseInputs(cmd.Context(), cfg, logger, args)
	if err != nil {
		return err
	}

	if err := plot.RenderFile(cfg.Plot.Output, series, cfg.Style()); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}

	logger.Info("plot written",
		slog.String("output", cfg.Plot.Output),
		slog.Int("series", len(series)))
	return nil
}
