// Package models defines data structures for xvg extraction.
package models

// Sample is a single (x, y) data point.
type Sample struct {
	// X is the independent variable (usually time in ps).
	X float64 `json:"x"`
	// Y is the dependent variable.
	Y float64 `json:"y"`
}

// Series is an ordered list of samples in file order.
type Series []Sample

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s)
}

// XValues returns a copy of the x column.
func (s Series) XValues() []float64 {
	xs := make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X
	}
	return xs
}

// YValues returns a copy of the y column.
func (s Series) YValues() []float64 {
	ys := make([]float64, len(s))
	for i, p := range s {
		ys[i] = p.Y
	}
	return ys
}

// MeanY returns the arithmetic mean of the y column.
// ok is false when the series has no samples.
func (s Series) MeanY() (mean float64, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, p := range s {
		sum += p.Y
	}
	return sum / float64(len(s)), true
}
