package layout

import (
	"strings"
	"testing"
)

func TestHeadingLevelString(t *testing.T) {
	tests := []struct {
		level    HeadingLevel
		expected string
	}{
		{HeadingLevelNone, "none"},
		{HeadingLevel1, "h1"},
		{HeadingLevel2, "h2"},
		{HeadingLevel3, "h3"},
		{HeadingLevel(9), "none"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("HeadingLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestHeadingLevelPrefix(t *testing.T) {
	tests := []struct {
		level    HeadingLevel
		expected string
	}{
		{HeadingLevelNone, ""},
		{HeadingLevel1, "# "},
		{HeadingLevel2, "## "},
		{HeadingLevel3, "### "},
	}

	for _, tt := range tests {
		if got := tt.level.Prefix(); got != tt.expected {
			t.Errorf("HeadingLevel(%d).Prefix() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestLevelForRatioBoundaries(t *testing.T) {
	config := DefaultHeadingConfig()
	tests := []struct {
		ratio float64
		want  HeadingLevel
	}{
		{2.5, HeadingLevel1},
		{1.95, HeadingLevel1},
		{1.94999, HeadingLevel2},
		{1.65, HeadingLevel2},
		{1.64999, HeadingLevel3},
		{1.28, HeadingLevel3},
		{1.27999, HeadingLevelNone},
		{1.0, HeadingLevelNone},
	}

	for _, tt := range tests {
		if got := config.LevelForRatio(tt.ratio); got != tt.want {
			t.Errorf("LevelForRatio(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestClassifyHeading(t *testing.T) {
	config := DefaultHeadingConfig()
	tests := []struct {
		name     string
		text     string
		fontSize float64
		body     float64
		want     HeadingLevel
	}{
		{"exact minimum ratio", "Introduction", 12.8, 10, HeadingLevel3},
		{"just below minimum ratio", "Introduction", 12.79, 10, HeadingLevelNone},
		{"level one", "Report Title", 24, 12, HeadingLevel1},
		{"level one boundary", "Report Title", 19.5, 10, HeadingLevel1},
		{"level two", "Methods", 16.5, 10, HeadingLevel2},
		{"body size", "Plain text", 12, 12, HeadingLevelNone},
		{"bullet item", "- Large bullet", 24, 12, HeadingLevelNone},
		{"numbered item", "1. Large item", 24, 12, HeadingLevelNone},
		{"contains tab", "Col A\tCol B", 24, 12, HeadingLevelNone},
		{"too many words", strings.Repeat("word ", 15), 24, 12, HeadingLevelNone},
		{"fourteen words", strings.TrimSpace(strings.Repeat("word ", 14)), 24, 12, HeadingLevel1},
		{"too long", strings.Repeat("x", 91), 24, 12, HeadingLevelNone},
		{"ninety chars", strings.Repeat("x", 90), 24, 12, HeadingLevel1},
		{"empty", "", 24, 12, HeadingLevelNone},
		{"zero body size", "Title", 24, 0, HeadingLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyHeading(tt.text, tt.fontSize, tt.body, config); got != tt.want {
				t.Errorf("ClassifyHeading(%q, %v, %v) = %v, want %v", tt.text, tt.fontSize, tt.body, got, tt.want)
			}
		})
	}
}
