package plot

import (
	"fmt"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"
)

// LegendText returns the legend entry for a series, e.g. "npt.xvg, ave=997.100".
// The average suffix is left off when the series has no samples.
func LegendText(ps *models.ParsedSeries, from LegendSource, showAverage bool) string {
	name := ps.SourceName
	if from == LegendFromLabel {
		name = ps.LegendLabelOr(ps.SourceName)
	}

	if showAverage {
		if mean, ok := ps.MeanY(); ok {
			return fmt.Sprintf("%s, ave=%.3f", name, mean)
		}
	}
	return name
}
