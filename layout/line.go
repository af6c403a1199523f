package layout

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Default line assembly thresholds, in PDF points unless noted.
const (
	// DefaultRowBucket is the y-quantization step used to cluster rows
	DefaultRowBucket = 2.0

	// DefaultInitialCharWidth is the character width assumed before the
	// first segment of a row has been seen
	DefaultInitialCharWidth = 5.0

	// DefaultTabGapMin and DefaultTabGapCharWidths define the gap above which
	// two segments are separated by a tab: max(24, charWidth*6)
	DefaultTabGapMin        = 24.0
	DefaultTabGapCharWidths = 6.0

	// DefaultSpaceGapMin and DefaultSpaceGapCharWidths define the gap above
	// which two segments are separated by a space: max(6, charWidth*1.75)
	DefaultSpaceGapMin        = 6.0
	DefaultSpaceGapCharWidths = 1.75

	// DefaultBreakAfterRatio is the multiple of a line's font size that the
	// distance to the next row must exceed to mark a paragraph break
	DefaultBreakAfterRatio = 1.7
)

var multiSpace = regexp.MustCompile(` {2,}`)

// Line is the Markdown-ready form of one row
type Line struct {
	// Text is the assembled row text; columns are separated by tabs
	Text string

	// HasTabs reports whether Text contains at least one tab separator
	HasTabs bool

	// FontSize is the mean font size of the row's segments
	FontSize float64

	// BreakAfter marks a visually significant gap below this line
	BreakAfter bool

	// Y is the quantized baseline of the row
	Y float64
}

// LineConfig holds the thresholds used to turn rows into lines
type LineConfig struct {
	RowBucket          float64 `yaml:"row_bucket" mapstructure:"row_bucket"`
	InitialCharWidth   float64 `yaml:"initial_char_width" mapstructure:"initial_char_width"`
	TabGapMin          float64 `yaml:"tab_gap_min" mapstructure:"tab_gap_min"`
	TabGapCharWidths   float64 `yaml:"tab_gap_char_widths" mapstructure:"tab_gap_char_widths"`
	SpaceGapMin        float64 `yaml:"space_gap_min" mapstructure:"space_gap_min"`
	SpaceGapCharWidths float64 `yaml:"space_gap_char_widths" mapstructure:"space_gap_char_widths"`
	BreakAfterRatio    float64 `yaml:"break_after_ratio" mapstructure:"break_after_ratio"`
}

// DefaultLineConfig returns the standard line assembly thresholds
func DefaultLineConfig() LineConfig {
	return LineConfig{
		RowBucket:          DefaultRowBucket,
		InitialCharWidth:   DefaultInitialCharWidth,
		TabGapMin:          DefaultTabGapMin,
		TabGapCharWidths:   DefaultTabGapCharWidths,
		SpaceGapMin:        DefaultSpaceGapMin,
		SpaceGapCharWidths: DefaultSpaceGapCharWidths,
		BreakAfterRatio:    DefaultBreakAfterRatio,
	}
}

// Separator is the whitespace inferred between two adjacent segments
type Separator int

const (
	SeparatorNone Separator = iota
	SeparatorSpace
	SeparatorTab
)

// String returns the separator's text
func (s Separator) String() string {
	switch s {
	case SeparatorSpace:
		return " "
	case SeparatorTab:
		return "\t"
	default:
		return ""
	}
}

// SeparatorFor classifies the horizontal gap following a segment whose
// average character width is charWidth.
func SeparatorFor(gap, charWidth float64, config LineConfig) Separator {
	switch {
	case gap > math.Max(config.TabGapMin, charWidth*config.TabGapCharWidths):
		return SeparatorTab
	case gap > math.Max(config.SpaceGapMin, charWidth*config.SpaceGapCharWidths):
		return SeparatorSpace
	default:
		return SeparatorNone
	}
}

// AssembleRow joins a row's segments into one string, inferring spaces and
// tabs from the gaps between them. Trailing separators are stripped and
// repeated spaces collapsed.
func AssembleRow(row Row, config LineConfig) (string, bool) {
	var sb strings.Builder
	hasTabs := false
	previousEnd := 0.0
	previousCharWidth := config.InitialCharWidth

	for i, seg := range row.Segments {
		if i > 0 {
			sep := SeparatorFor(seg.X-previousEnd, previousCharWidth, config)
			if sep == SeparatorTab {
				hasTabs = true
			}
			sb.WriteString(sep.String())
		}
		sb.WriteString(seg.Text)

		previousEnd = seg.X + seg.Width
		previousCharWidth = seg.Width / float64(max(utf8.RuneCountInString(seg.Text), 1))
	}

	s := strings.TrimRight(sb.String(), " \t")
	s = multiSpace.ReplaceAllString(s, " ")
	return s, hasTabs
}

// BuildLines assembles rows into lines. Rows whose text is empty after
// assembly are dropped. BreakAfter is set when the distance to the next
// row exceeds the line's font size times BreakAfterRatio; the last row of
// a page never breaks.
func BuildLines(rows []Row, config LineConfig) []Line {
	lines := make([]Line, 0, len(rows))
	for i, row := range rows {
		s, hasTabs := AssembleRow(row, config)
		if s == "" {
			continue
		}

		fontSize := row.FontSize()
		breakAfter := false
		if i+1 < len(rows) {
			breakAfter = row.Y-rows[i+1].Y > fontSize*config.BreakAfterRatio
		}

		lines = append(lines, Line{
			Text:       s,
			HasTabs:    hasTabs,
			FontSize:   fontSize,
			BreakAfter: breakAfter,
			Y:          row.Y,
		})
	}
	return lines
}
