package layout

import (
	"sort"
	"unicode/utf8"
)

const (
	// DefaultBodyMinLineLength is the character count a tab-free line needs
	// to count as prose when estimating the body font size
	DefaultBodyMinLineLength = 20

	// DefaultNominalFontSize is the body font size assumed for a document
	// with no lines at all
	DefaultNominalFontSize = 12.0
)

// BodyFontConfig holds configuration for body font size estimation
type BodyFontConfig struct {
	MinLineLength int     `yaml:"min_line_length" mapstructure:"min_line_length"`
	NominalSize   float64 `yaml:"nominal_size" mapstructure:"nominal_size"`
}

// DefaultBodyFontConfig returns the standard body font settings
func DefaultBodyFontConfig() BodyFontConfig {
	return BodyFontConfig{
		MinLineLength: DefaultBodyMinLineLength,
		NominalSize:   DefaultNominalFontSize,
	}
}

// Median returns the statistical median of values, averaging the two middle
// values for even-length input. It returns 0 for no values and does not
// modify its argument.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// BodyFontSize estimates the document's reference font size: the median
// font size of long, tab-free lines across all pages. When no line
// qualifies every line is used, and with no lines at all the nominal size
// is returned.
//
// Tab-bearing lines are excluded as a proxy for tables, so a document made
// almost entirely of tables falls back to short lines such as headings.
func BodyFontSize(pages [][]Line, config BodyFontConfig) float64 {
	var prose, all []float64
	for _, lines := range pages {
		for _, line := range lines {
			all = append(all, line.FontSize)
			if !line.HasTabs && utf8.RuneCountInString(line.Text) >= config.MinLineLength {
				prose = append(prose, line.FontSize)
			}
		}
	}

	switch {
	case len(prose) > 0:
		return Median(prose)
	case len(all) > 0:
		return Median(all)
	default:
		return config.NominalSize
	}
}
