package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"
)

// ErrNothingToPlot indicates that none of the series has samples.
var ErrNothingToPlot = errors.New("nothing to plot")

// Build assembles a chart for the series on shared axes.
// The axes are named after the first series' labels. Series without samples
// are left out of the chart.
func Build(series []*models.ParsedSeries, style Style) (*chart.Chart, error) {
	if len(series) == 0 || series[0] == nil {
		return nil, ErrNothingToPlot
	}

	var plotted []chart.Series
	xr, yr := newBounds(), newBounds()
	for i, ps := range series {
		if ps == nil || ps.Samples.Len() == 0 {
			continue
		}
		xs, ys := ps.Samples.XValues(), ps.Samples.YValues()
		xr.add(xs)
		yr.add(ys)

		line := style.line(i)
		plotted = append(plotted, chart.ContinuousSeries{
			Name: LegendText(ps, style.LegendFrom, style.ShowAverage),
			Style: chart.Style{
				StrokeColor:     drawing.ColorFromHex(line.Color),
				StrokeWidth:     1,
				StrokeDashArray: line.Dash,
			},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(plotted) == 0 {
		return nil, ErrNothingToPlot
	}

	first := series[0]
	width, height := style.Size()
	text := chart.Style{FontSize: style.FontSize}

	c := &chart.Chart{
		Title:      style.Title,
		TitleStyle: chart.Style{Hidden: style.Title == "", FontSize: style.FontSize + 2},
		Width:      width,
		Height:     height,
		DPI:        style.DPI,
		XAxis: chart.XAxis{
			Name:           first.XLabelOr(""),
			NameStyle:      text,
			Style:          text,
			Range:          xr.rangeIfFlat(),
			GridMajorStyle: gridStyle(style.Grid),
			GridMinorStyle: chart.Style{Hidden: true},
		},
		YAxis: chart.YAxis{
			Name:           first.YLabelOr(""),
			NameStyle:      text,
			Style:          text,
			Range:          yr.rangeIfFlat(),
			GridMajorStyle: gridStyle(style.Grid),
			GridMinorStyle: chart.Style{Hidden: true},
		},
		Series: plotted,
	}
	if style.Transparent {
		c.Background = chart.Style{FillColor: drawing.ColorTransparent}
		c.Canvas = chart.Style{FillColor: drawing.ColorTransparent}
	}
	c.Elements = []chart.Renderable{chart.Legend(c, text)}

	return c, nil
}

// Render draws the series to w in style.Format.
func Render(w io.Writer, series []*models.ParsedSeries, style Style) error {
	c, err := Build(series, style)
	if err != nil {
		return err
	}

	provider := chart.PNG
	if style.Format == FormatSVG {
		provider = chart.SVG
	}
	if err := c.Render(provider, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// RenderFile draws the series into a new file at path.
func RenderFile(path string, series []*models.ParsedSeries, style Style) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, series, style); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func gridStyle(show bool) chart.Style {
	if !show {
		return chart.Style{Hidden: true}
	}
	return chart.Style{
		StrokeColor:     drawing.ColorFromHex("bbbbbb"),
		StrokeWidth:     0.5,
		StrokeDashArray: []float64{4, 2},
	}
}

// bounds tracks the min and max over every plotted series.
type bounds struct {
	min, max float64
}

func newBounds() *bounds {
	return &bounds{min: math.Inf(1), max: math.Inf(-1)}
}

func (b *bounds) add(values []float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		b.min = math.Min(b.min, v)
		b.max = math.Max(b.max, v)
	}
}

// rangeIfFlat returns an explicit range when every value is the same,
// which the chart library cannot auto-scale. Otherwise it returns nil.
func (b *bounds) rangeIfFlat() chart.Range {
	if b.min > b.max {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	if b.min == b.max {
		pad := math.Max(math.Abs(b.min)*0.05, 1)
		return &chart.ContinuousRange{Min: b.min - pad, Max: b.max + pad}
	}
	return nil
}
