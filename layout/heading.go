package layout

import (
	"strings"
	"unicode/utf8"
)

// Default heading thresholds. Ratios are line font size over body font size.
const (
	DefaultHeadingMinRatio    = 1.28
	DefaultHeadingLevel2Ratio = 1.65
	DefaultHeadingLevel1Ratio = 1.95
	DefaultHeadingMaxLength   = 90
	DefaultHeadingMaxWords    = 14
)

// HeadingLevel represents the Markdown level of a heading
type HeadingLevel int

const (
	HeadingLevelNone HeadingLevel = iota
	HeadingLevel1                 // # - title
	HeadingLevel2                 // ## - section
	HeadingLevel3                 // ### - subsection
)

// String returns a string representation of the heading level
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "h1"
	case HeadingLevel2:
		return "h2"
	case HeadingLevel3:
		return "h3"
	default:
		return "none"
	}
}

// Prefix returns the Markdown marker for the level, including the trailing
// space, or "" for HeadingLevelNone.
func (l HeadingLevel) Prefix() string {
	if l < HeadingLevel1 || l > HeadingLevel3 {
		return ""
	}
	return strings.Repeat("#", int(l)) + " "
}

// HeadingConfig holds configuration for heading detection
type HeadingConfig struct {
	// MinRatio is the smallest font-size ratio that can be a heading
	MinRatio float64 `yaml:"min_ratio" mapstructure:"min_ratio"`

	// Level2Ratio and Level1Ratio promote headings to ## and #
	Level2Ratio float64 `yaml:"level2_ratio" mapstructure:"level2_ratio"`
	Level1Ratio float64 `yaml:"level1_ratio" mapstructure:"level1_ratio"`

	// MaxLength is the maximum heading length in characters
	MaxLength int `yaml:"max_length" mapstructure:"max_length"`

	// MaxWords is the maximum number of words in a heading
	MaxWords int `yaml:"max_words" mapstructure:"max_words"`
}

// DefaultHeadingConfig returns the standard heading thresholds
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MinRatio:    DefaultHeadingMinRatio,
		Level2Ratio: DefaultHeadingLevel2Ratio,
		Level1Ratio: DefaultHeadingLevel1Ratio,
		MaxLength:   DefaultHeadingMaxLength,
		MaxWords:    DefaultHeadingMaxWords,
	}
}

// LevelForRatio maps a font-size ratio to a heading level without checking
// the other heading conditions.
func (c HeadingConfig) LevelForRatio(ratio float64) HeadingLevel {
	switch {
	case ratio >= c.Level1Ratio:
		return HeadingLevel1
	case ratio >= c.Level2Ratio:
		return HeadingLevel2
	case ratio >= c.MinRatio:
		return HeadingLevel3
	default:
		return HeadingLevelNone
	}
}

// ClassifyHeading decides whether s, set at fontSize, reads as a heading
// against the document's body font size. s should already have its list
// markers normalized.
func ClassifyHeading(s string, fontSize, bodyFontSize float64, config HeadingConfig) HeadingLevel {
	if s == "" || bodyFontSize <= 0 {
		return HeadingLevelNone
	}
	if utf8.RuneCountInString(s) > config.MaxLength {
		return HeadingLevelNone
	}
	if IsListItem(s) || strings.Contains(s, "\t") {
		return HeadingLevelNone
	}
	if len(strings.Fields(s)) > config.MaxWords {
		return HeadingLevelNone
	}
	return config.LevelForRatio(fontSize / bodyFontSize)
}
