package parser

import (
	"errors"
	"fmt"
)

// ErrFileUnreadable indicates the input could not be opened or read.
var ErrFileUnreadable = errors.New("file unreadable")

// ErrMalformedHeaderLabel indicates a recognized label tag without a quoted value.
var ErrMalformedHeaderLabel = errors.New("malformed header label")

// ErrMalformedDataLine indicates a data line that is not two floating-point numbers.
var ErrMalformedDataLine = errors.New("malformed data line")

// ErrEmptySeries indicates there are no samples to summarize.
var ErrEmptySeries = errors.New("empty series")

// LineError attaches a line number and the offending text to an error.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// NewLineError creates a new LineError.
func NewLineError(line int, text string, err error) *LineError {
	return &LineError{
		Line: line,
		Text: text,
		Err:  err,
	}
}
