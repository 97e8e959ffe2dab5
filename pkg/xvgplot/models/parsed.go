package models

// ParsedSeries is the record produced for one xvg file.
type ParsedSeries struct {
	// SourceName identifies the originating file (the path as given).
	SourceName string `json:"source_name"`
	// XLabel is the x-axis label (nil if the header has none).
	XLabel *string `json:"x_label,omitempty"`
	// YLabel is the y-axis label (nil if the header has none).
	YLabel *string `json:"y_label,omitempty"`
	// LegendLabel is the legend text of the s0 data set (nil if absent).
	LegendLabel *string `json:"legend_label,omitempty"`
	// HeaderLines is the number of '#' and '@' lines read.
	HeaderLines int `json:"header_line_count"`
	// Samples holds the data points in file order.
	Samples Series `json:"samples"`
}

// MeanY returns the mean of the y values, recomputed on every call.
// ok is false when the file had no data lines.
func (p *ParsedSeries) MeanY() (float64, bool) {
	return p.Samples.MeanY()
}

// XLabelOr returns the x-axis label or def when it is absent.
func (p *ParsedSeries) XLabelOr(def string) string {
	return stringOr(p.XLabel, def)
}

// YLabelOr returns the y-axis label or def when it is absent.
func (p *ParsedSeries) YLabelOr(def string) string {
	return stringOr(p.YLabel, def)
}

// LegendLabelOr returns the legend label or def when it is absent.
func (p *ParsedSeries) LegendLabelOr(def string) string {
	return stringOr(p.LegendLabel, def)
}

func stringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
