package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"
)

// ParseData converts data lines into samples.
// It stops at the first malformed line and returns a *LineError for it.
func ParseData(lines []DataLine) (models.Series, error) {
	result := make(models.Series, 0, len(lines))
	for _, dl := range lines {
		s, err := ParseDataLine(dl.Text)
		if err != nil {
			return nil, NewLineError(dl.Line, dl.Text, err)
		}
		result = append(result, s)
	}
	return result, nil
}

// ParseDataLine parses the first two whitespace-separated columns of a data line.
// Additional columns are ignored.
func ParseDataLine(text string) (models.Sample, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return models.Sample{}, ErrMalformedDataLine
	}

	x, ok := parseFloat(fields[0])
	if !ok {
		return models.Sample{}, ErrMalformedDataLine
	}
	y, ok := parseFloat(fields[1])
	if !ok {
		return models.Sample{}, ErrMalformedDataLine
	}

	return models.Sample{X: x, Y: y}, nil
}

// parseFloat parses a single numeric column.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
