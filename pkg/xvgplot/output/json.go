// Package output serializes parsed xvg series.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"
)

// SeriesView is the serialized form of a ParsedSeries.
// MeanY is null when the series has no samples.
type SeriesView struct {
	*models.ParsedSeries
	SampleCount int      `json:"sample_count"`
	MeanY       *float64 `json:"mean_y"`
}

// NewSeriesView wraps a series together with its computed summary.
func NewSeriesView(ps *models.ParsedSeries) SeriesView {
	v := SeriesView{
		ParsedSeries: ps,
		SampleCount:  ps.Samples.Len(),
	}
	if mean, ok := ps.MeanY(); ok {
		v.MeanY = &mean
	}
	return v
}

// ToJSON serializes the series as a JSON array.
func ToJSON(series []*models.ParsedSeries, pretty bool) ([]byte, error) {
	views := make([]SeriesView, 0, len(series))
	for _, ps := range series {
		views = append(views, NewSeriesView(ps))
	}
	return marshal(views, pretty)
}

// SeriesToJSON serializes a single series as a JSON object.
// Unindented output fits on one line, as used for JSON lines export.
func SeriesToJSON(ps *models.ParsedSeries, pretty bool) ([]byte, error) {
	return marshal(NewSeriesView(ps), pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
