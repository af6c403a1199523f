package text

import "math"

// Run is a positioned piece of text as reported by a PDF text-extraction
// library. Runs arrive unordered and may carry incomplete geometry.
type Run struct {
	// Text is the raw string, possibly padded with whitespace
	Text string

	// Transform is the text rendering matrix [a b c d e f]. The translation
	// components e and f hold the baseline origin (x, y) in PDF user space,
	// where y grows toward the top of the page.
	Transform []float64

	// Width is the advance width of the run in points (0 when unknown)
	Width float64

	// Height is the run height in points (0 when unknown)
	Height float64
}

// NewRun creates a run from flat coordinates, building an unrotated
// transform scaled by fontSize.
func NewRun(s string, x, y, width, fontSize float64) Run {
	return Run{
		Text:      s,
		Transform: []float64{fontSize, 0, 0, fontSize, x, y},
		Width:     width,
		Height:    fontSize,
	}
}

// X returns the baseline x coordinate, or 0 when the transform is missing.
func (r Run) X() float64 {
	return r.component(4)
}

// Y returns the baseline y coordinate, or 0 when the transform is missing.
func (r Run) Y() float64 {
	return r.component(5)
}

// FontSize returns the font size implied by the transform's vertical scale,
// falling back to Height. It returns 0 when neither is usable.
func (r Run) FontSize() float64 {
	if len(r.Transform) >= 4 {
		size := math.Hypot(r.Transform[2], r.Transform[3])
		if isPositive(size) {
			return size
		}
	}
	if isPositive(r.Height) {
		return r.Height
	}
	return 0
}

func (r Run) component(i int) float64 {
	if i >= len(r.Transform) {
		return 0
	}
	v := r.Transform[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// isPositive reports whether v is a finite number greater than zero.
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
