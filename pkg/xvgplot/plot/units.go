// Package plot renders parsed xvg series as line charts.
package plot

import "math"

// PointsPerInch is the number of TeX points per inch.
// LaTeX reports \textwidth in these units, so figure widths are given in them.
const PointsPerInch = 72.27

// GoldenRatio is the height-to-width ratio of a figure: (sqrt(5) - 1) / 2.
var GoldenRatio = (math.Sqrt(5) - 1) / 2

// PointsToInches converts TeX points to inches.
func PointsToInches(pt float64) float64 {
	return pt / PointsPerInch
}

// FigureSize returns the pixel size of a figure that spans fraction of a
// text width of widthPt points, rendered at dpi.
// The height follows the golden ratio.
func FigureSize(widthPt, fraction, dpi float64) (width, height int) {
	widthIn := PointsToInches(widthPt * fraction)
	heightIn := widthIn * GoldenRatio
	return int(math.Round(widthIn * dpi)), int(math.Round(heightIn * dpi))
}
