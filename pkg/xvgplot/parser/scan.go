package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxHeaderLines is the default size of the header scan window.
// GROMACS writes about 26 header lines, so 30 leaves a little slack.
const DefaultMaxHeaderLines = 30

// maxLineSize bounds a single line; legends with long titles still fit.
const maxLineSize = 1024 * 1024

// Labels holds the header labels found so far.
type Labels struct {
	XAxis  *string
	YAxis  *string
	Legend *string
}

// Count returns how many of the three labels are set.
func (l Labels) Count() int {
	n := 0
	for _, s := range []*string{l.XAxis, l.YAxis, l.Legend} {
		if s != nil {
			n++
		}
	}
	return n
}

// Complete reports whether all three labels are set.
func (l Labels) Complete() bool {
	return l.Count() == 3
}

func (l *Labels) set(lbl Label) {
	text := lbl.Text
	switch lbl.Kind {
	case LabelXAxis:
		l.XAxis = &text
	case LabelYAxis:
		l.YAxis = &text
	case LabelLegend:
		l.Legend = &text
	}
}

// DataLine is a raw data line together with its 1-based line number.
type DataLine struct {
	Line int
	Text string
}

// ScanResult is the outcome of scanning an xvg file.
type ScanResult struct {
	Labels Labels
	// HeaderLines counts every '#' and '@' line.
	HeaderLines int
	// DataLines holds trimmed data lines in file order.
	DataLines []DataLine
	// LinesRead is the total number of lines read.
	LinesRead int
	// WindowClosedAt is the line number at which label extraction stopped
	// because the window was exhausted with labels missing; 0 if it never closed.
	WindowClosedAt int
}

// Scan reads r line by line, classifying each line on its own prefix.
//
// Labels are extracted from directive lines while the header window is open.
// The window closes once more than maxHeaderLines lines have been read
// without finding all three labels; directive lines after that point are
// counted but not parsed. Data lines are collected until EOF whether the
// window is open or not, and may be interleaved with header lines.
// A maxHeaderLines below 1 selects DefaultMaxHeaderLines.
func Scan(r io.Reader, maxHeaderLines int) (*ScanResult, error) {
	if maxHeaderLines < 1 {
		maxHeaderLines = DefaultMaxHeaderLines
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	res := &ScanResult{}
	windowOpen := true
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := sc.Text()

		kind := ClassifyLine(line)
		if kind.IsHeader() {
			res.HeaderLines++
		}
		switch kind {
		case LineDirective:
			if windowOpen {
				lbl, err := ExtractLabel(line)
				if err != nil {
					return nil, NewLineError(lineNo, strings.TrimSpace(line), err)
				}
				res.Labels.set(lbl)
			}
		case LineData:
			res.DataLines = append(res.DataLines, DataLine{
				Line: lineNo,
				Text: strings.TrimSpace(line),
			})
		}

		if windowOpen && lineNo > maxHeaderLines && !res.Labels.Complete() {
			windowOpen = false
			res.WindowClosedAt = lineNo
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrFileUnreadable, lineNo+1, err)
	}

	res.LinesRead = lineNo
	return res, nil
}
