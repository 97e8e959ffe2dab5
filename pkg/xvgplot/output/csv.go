package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"
)

// CSVHeader is the header row written by WriteCSV.
var CSVHeader = []string{"source", "x", "y"}

// WriteCSV writes every sample of every series in long format: source,x,y.
func WriteCSV(w io.Writer, series []*models.ParsedSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, ps := range series {
		for _, s := range ps.Samples {
			record := []string{
				ps.SourceName,
				strconv.FormatFloat(s.X, 'f', -1, 64),
				strconv.FormatFloat(s.Y, 'f', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
