// Package xvgplot parses GROMACS xvg plot-data files.
package xvgplot

import (
	"io"
	"log/slog"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/parser"
)

// Options configures parsing behavior.
type Options struct {
	// MaxHeaderLines bounds the header scan window.
	// If zero or negative, parser.DefaultMaxHeaderLines is used.
	MaxHeaderLines int
	// Concurrency is the number of files ParseFiles parses at once.
	// If zero or negative, files are parsed one after another.
	Concurrency int
	// Logger receives diagnostic messages. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default parsing options.
func DefaultOptions() Options {
	return Options{
		MaxHeaderLines: parser.DefaultMaxHeaderLines,
		Concurrency:    1,
	}
}

// HeaderWindow returns the effective header scan window.
func (o Options) HeaderWindow() int {
	if o.MaxHeaderLines > 0 {
		return o.MaxHeaderLines
	}
	return parser.DefaultMaxHeaderLines
}

// Workers returns the effective number of concurrent parses.
func (o Options) Workers() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return 1
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
