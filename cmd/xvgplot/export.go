package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"
	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/output"
)

var (
	exportFormat string
	exportOutput string
	exportPretty bool
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [input.xvg...]",
		Short: "Export parsed xvg data as JSON, JSON lines, CSV or xlsx",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExport,
	}

	f := cmd.Flags()
	f.StringVar(&exportFormat, "format", "json", "Output format: json, jsonl, csv, xlsx")
	f.StringVarP(&exportOutput, "output", "o", "", "Output file path (default: stdout; required for xlsx)")
	f.BoolVar(&exportPretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat == "xlsx" && exportOutput == "" {
		return fmt.Errorf("--output is required for xlsx export")
	}

	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	series, err := parseInputs(cmd.Context(), cfg, logger, args)
	if err != nil {
		return err
	}

	if exportFormat == "xlsx" {
		if err := output.WriteWorkbook(exportOutput, series, output.DefaultWorkbookOptions()); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		logger.Info("workbook written", slog.String("output", exportOutput))
		return nil
	}

	data, err := encode(exportFormat, series)
	if err != nil {
		return err
	}

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func encode(format string, series []*models.ParsedSeries) ([]byte, error) {
	switch format {
	case "json":
		data, err := output.ToJSON(series, exportPretty)
		if err != nil {
			return nil, fmt.Errorf("serialization failed: %w", err)
		}
		return append(data, '\n'), nil
	case "jsonl":
		var buf bytes.Buffer
		for _, ps := range series {
			data, err := output.SeriesToJSON(ps, false)
			if err != nil {
				return nil, fmt.Errorf("serialization failed: %w", err)
			}
			buf.Write(data)
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	case "csv":
		var buf bytes.Buffer
		if err := output.WriteCSV(&buf, series); err != nil {
			return nil, fmt.Errorf("serialization failed: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be json, jsonl, csv, or xlsx)", format)
	}
}
