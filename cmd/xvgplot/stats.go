package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [input.xvg...]",
		Short: "Print labels, sample count and mean of each xvg file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	series, err := parseInputs(cmd.Context(), cfg, logger, args)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tLEGEND\tX\tY\tSAMPLES\tMEAN")
	for _, ps := range series {
		mean := "n/a"
		if m, ok := ps.MeanY(); ok {
			mean = fmt.Sprintf("%.3f", m)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			ps.SourceName,
			ps.LegendLabelOr("-"),
			ps.XLabelOr("-"),
			ps.YLabelOr("-"),
			ps.Samples.Len(),
			mean)
	}
	return tw.Flush()
}
