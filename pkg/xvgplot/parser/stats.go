package parser

import "github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"

// Mean returns the arithmetic mean of the y values.
// It returns ErrEmptySeries rather than a placeholder when there are no samples.
func Mean(s models.Series) (float64, error) {
	mean, ok := s.MeanY()
	if !ok {
		return 0, ErrEmptySeries
	}
	return mean, nil
}
