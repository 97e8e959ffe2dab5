package xvgplot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"
	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/parser"
)

// Parse reads an xvg file and returns its labels, samples and header count.
// The file is closed before Parse returns.
func Parse(path string, opts Options) (*models.ParsedSeries, error) {
	log := opts.logger().With(slog.String("file", path))
	log.Debug("reading xvg file")

	f, err := os.Open(path)
	if err != nil {
		return nil, NewParseError(path, StageOpen, fmt.Errorf("%w: %w", ErrFileUnreadable, err))
	}
	defer f.Close()

	return parseReader(path, f, opts, log)
}

// ParseReader parses xvg content from r. name becomes the record's SourceName.
func ParseReader(name string, r io.Reader, opts Options) (*models.ParsedSeries, error) {
	return parseReader(name, r, opts, opts.logger().With(slog.String("file", name)))
}

func parseReader(name string, r io.Reader, opts Options, log *slog.Logger) (*models.ParsedSeries, error) {
	scan, err := parser.Scan(r, opts.HeaderWindow())
	if err != nil {
		stage := StageHeader
		if errors.Is(err, ErrFileUnreadable) {
			stage = StageRead
		}
		return nil, NewParseError(name, stage, err)
	}

	if scan.WindowClosedAt > 0 {
		log.Info("header scan window closed",
			slog.Int("line", scan.WindowClosedAt),
			slog.Int("lines_read", scan.LinesRead),
			slog.Int("labels_found", scan.Labels.Count()))
	}

	samples, err := parser.ParseData(scan.DataLines)
	if err != nil {
		return nil, NewParseError(name, StageData, err)
	}

	if len(samples) == 0 {
		log.Warn("no data lines found", slog.Int("lines_read", scan.LinesRead))
	}
	log.Debug("xvg file parsed",
		slog.Int("lines_read", scan.LinesRead),
		slog.Int("header_lines", scan.HeaderLines),
		slog.Int("samples", len(samples)))

	return &models.ParsedSeries{
		SourceName:  name,
		XLabel:      scan.Labels.XAxis,
		YLabel:      scan.Labels.YAxis,
		LegendLabel: scan.Labels.Legend,
		HeaderLines: scan.HeaderLines,
		Samples:     samples,
	}, nil
}

// FileResult is the outcome of parsing one file in ParseFiles.
type FileResult struct {
	Path   string
	Series *models.ParsedSeries
	Err    error
}

// ParseFiles parses every path and returns one result per path, in input order.
// Files are parsed by up to opts.Workers() goroutines; parses share no state.
// A failed file does not stop the others. Once ctx is done, files that have
// not started yet report ctx.Err().
func ParseFiles(ctx context.Context, paths []string, opts Options) []FileResult {
	results := make([]FileResult, len(paths))

	var g errgroup.Group
	g.SetLimit(opts.Workers())

	for i, path := range paths {
		g.Go(func() error {
			results[i].Path = path
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Series, results[i].Err = Parse(path, opts)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// FirstError returns the first failed result's error in input order, or nil.
func FirstError(results []FileResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// Succeeded returns the parsed series of the successful results, in order.
func Succeeded(results []FileResult) []*models.ParsedSeries {
	var out []*models.ParsedSeries
	for _, r := range results {
		if r.Err == nil && r.Series != nil {
			out = append(out, r.Series)
		}
	}
	return out
}
