package plot

import (
	"path/filepath"
	"strings"
)

// LegendSource selects the text used for each series in the legend.
type LegendSource string

const (
	// LegendFromFile uses the file name the series was parsed from.
	LegendFromFile LegendSource = "file"
	// LegendFromLabel uses the s0 legend label, falling back to the file name.
	LegendFromLabel LegendSource = "legend"
)

// Format is the image format written by Render.
type Format string

const (
	// FormatPNG writes a PNG image.
	FormatPNG Format = "png"
	// FormatSVG writes an SVG document.
	FormatSVG Format = "svg"
)

// FormatFromPath picks the format from the file extension; anything but .svg is PNG.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatPNG
}

// Line is the stroke of one series.
type Line struct {
	// Color is a hex color such as "ff0000".
	Color string
	// Dash is the dash pattern in pixels; empty draws a solid line.
	Dash []float64
}

// DefaultLines cycles black solid, red dashed, blue dotted and green dash-dot.
var DefaultLines = []Line{
	{Color: "000000"},
	{Color: "ff0000", Dash: []float64{6, 3}},
	{Color: "0000ff", Dash: []float64{1, 3}},
	{Color: "008000", Dash: []float64{6, 3, 1, 3}},
}

// Style holds every setting of a rendered figure.
// It is passed to Render explicitly; nothing in this package keeps plot state.
type Style struct {
	// WidthPt is the text width in TeX points the figure is sized against.
	WidthPt float64
	// Fraction is the share of WidthPt the figure spans.
	Fraction float64
	// DPI is the output resolution.
	DPI float64
	// FontSize is the font size in points for ticks, axis names and legend.
	FontSize float64
	// Grid draws dashed major grid lines.
	Grid bool
	// Transparent leaves the background unfilled.
	Transparent bool
	// ShowAverage appends ", ave=<mean>" to each legend entry.
	ShowAverage bool
	// LegendFrom selects the legend text.
	LegendFrom LegendSource
	// Title is drawn above the plot when non-empty.
	Title string
	// Format is the output image format.
	Format Format
	// Lines is cycled over the series. If empty, DefaultLines is used.
	Lines []Line
}

// DefaultStyle returns the style used by the command line tool.
func DefaultStyle() Style {
	return Style{
		WidthPt:     426.79135,
		Fraction:    1,
		DPI:         300,
		FontSize:    8,
		Grid:        true,
		Transparent: true,
		LegendFrom:  LegendFromFile,
		Format:      FormatPNG,
	}
}

// Size returns the figure size in pixels.
func (s Style) Size() (width, height int) {
	fraction := s.Fraction
	if fraction <= 0 {
		fraction = 1
	}
	return FigureSize(s.WidthPt, fraction, s.DPI)
}

func (s Style) line(i int) Line {
	lines := s.Lines
	if len(lines) == 0 {
		lines = DefaultLines
	}
	return lines[i%len(lines)]
}
