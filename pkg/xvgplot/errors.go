package xvgplot

import (
	"fmt"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/parser"
)

// Error kinds, usable with errors.Is on any error returned by this package.
var (
	// ErrFileUnreadable indicates the input file could not be opened or read.
	ErrFileUnreadable = parser.ErrFileUnreadable
	// ErrMalformedHeaderLabel indicates an axis or s0 legend tag without a quoted value.
	ErrMalformedHeaderLabel = parser.ErrMalformedHeaderLabel
	// ErrMalformedDataLine indicates a data line that is not two numbers.
	ErrMalformedDataLine = parser.ErrMalformedDataLine
	// ErrEmptySeries indicates a file without data lines where a mean was required.
	ErrEmptySeries = parser.ErrEmptySeries
)

// Parse stages reported in ParseError.
const (
	StageOpen   = "open"
	StageRead   = "read"
	StageHeader = "header"
	StageData   = "data"
)

// ParseError represents an error while parsing one file.
type ParseError struct {
	Path  string
	Stage string // "open", "read", "header", "data"
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(path, stage string, err error) *ParseError {
	return &ParseError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
