package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"
)

// SummarySheet is the name of the first sheet of an exported workbook.
const SummarySheet = "Summary"

// SummaryHeader is the header row of the summary sheet.
var SummaryHeader = []interface{}{
	"source", "legend", "x_label", "y_label", "header_lines", "samples", "mean_y",
}

// maxSheetName is Excel's limit on sheet name length.
const maxSheetName = 31

// WorkbookOptions configures workbook export.
type WorkbookOptions struct {
	// IncludeCharts adds a scatter chart next to each data sheet's columns.
	IncludeCharts bool
	// IncludePrintAreas sets each data sheet's print area to its data range.
	IncludePrintAreas bool
}

// DefaultWorkbookOptions returns default workbook export options.
func DefaultWorkbookOptions() WorkbookOptions {
	return WorkbookOptions{
		IncludeCharts:     true,
		IncludePrintAreas: true,
	}
}

// WriteWorkbook saves the series as an xlsx workbook at path.
// The first sheet summarizes every series; each series then gets its own
// sheet with an x and a y column.
func WriteWorkbook(path string, series []*models.ParsedSeries, opts WorkbookOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(SummarySheet, "A1", &SummaryHeader); err != nil {
		return err
	}

	used := map[string]bool{}
	for i, ps := range series {
		if err := writeSummaryRow(f, i+2, ps); err != nil {
			return err
		}

		sheet := uniqueSheetName(ps.SourceName, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeDataSheet(f, sheet, ps); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
		if ps.Samples.Len() == 0 {
			continue
		}
		if opts.IncludeCharts {
			if err := addSeriesChart(f, sheet, ps); err != nil {
				return fmt.Errorf("sheet %q: chart: %w", sheet, err)
			}
		}
		if opts.IncludePrintAreas {
			if err := setPrintArea(f, sheet, ps.Samples.Len()+1); err != nil {
				return fmt.Errorf("sheet %q: print area: %w", sheet, err)
			}
		}
	}

	return f.SaveAs(path)
}

func writeSummaryRow(f *excelize.File, row int, ps *models.ParsedSeries) error {
	var mean interface{}
	if m, ok := ps.MeanY(); ok {
		mean = m
	}
	values := []interface{}{
		ps.SourceName,
		ps.LegendLabelOr(""),
		ps.XLabelOr(""),
		ps.YLabelOr(""),
		ps.HeaderLines,
		ps.Samples.Len(),
		mean,
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SummarySheet, cell, &values)
}

func writeDataSheet(f *excelize.File, sheet string, ps *models.ParsedSeries) error {
	header := []interface{}{ps.XLabelOr("x"), ps.YLabelOr("y")}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, s := range ps.Samples {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.X, s.Y}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func addSeriesChart(f *excelize.File, sheet string, ps *models.ParsedSeries) error {
	last := ps.Samples.Len() + 1
	ref := quoteSheet(sheet)

	return f.AddChart(sheet, "D2", &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{
			{
				Name:       ps.LegendLabelOr(ps.SourceName),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", ref, last),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", ref, last),
				Marker:     excelize.ChartMarker{Symbol: "none"},
			},
		},
		Title: []excelize.RichTextRun{{Text: ps.LegendLabelOr(filepath.Base(ps.SourceName))}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: ps.XLabelOr("")}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: ps.YLabelOr("")}}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	})
}

func setPrintArea(f *excelize.File, sheet string, lastRow int) error {
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("%s!$A$1:$B$%d", quoteSheet(sheet), lastRow),
		Scope:    sheet,
	})
}

// quoteSheet quotes a sheet name for use in a cell reference.
func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// uniqueSheetName derives a valid, unused sheet name from a file path.
func uniqueSheetName(source string, used map[string]bool) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	base = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\', '\'':
			return '_'
		}
		return r
	}, base)
	if base == "" {
		base = "series"
	}

	name := truncateRunes(base, maxSheetName)
	for n := 2; used[strings.ToLower(name)] || strings.EqualFold(name, SummarySheet); n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
