package layout

import (
	"fmt"

	"github.com/tsawler/pdfmd/text"
)

// Config holds configuration for every layout stage
type Config struct {
	Line     LineConfig     `yaml:"line" mapstructure:"line"`
	Heading  HeadingConfig  `yaml:"heading" mapstructure:"heading"`
	BodyFont BodyFontConfig `yaml:"body_font" mapstructure:"body_font"`
}

// DefaultConfig returns the standard thresholds for all stages
func DefaultConfig() Config {
	return Config{
		Line:     DefaultLineConfig(),
		Heading:  DefaultHeadingConfig(),
		BodyFont: DefaultBodyFontConfig(),
	}
}

// Validate reports configuration values that would make the analysis
// meaningless.
func (c Config) Validate() error {
	if c.Line.RowBucket <= 0 {
		return fmt.Errorf("row bucket must be positive, got %v", c.Line.RowBucket)
	}
	if c.Line.InitialCharWidth <= 0 {
		return fmt.Errorf("initial char width must be positive, got %v", c.Line.InitialCharWidth)
	}
	if c.Line.SpaceGapMin > c.Line.TabGapMin {
		return fmt.Errorf("space gap minimum %v exceeds tab gap minimum %v", c.Line.SpaceGapMin, c.Line.TabGapMin)
	}
	if c.Line.BreakAfterRatio <= 0 {
		return fmt.Errorf("break-after ratio must be positive, got %v", c.Line.BreakAfterRatio)
	}
	h := c.Heading
	if h.MinRatio <= 0 || h.MinRatio > h.Level2Ratio || h.Level2Ratio > h.Level1Ratio {
		return fmt.Errorf("heading ratios must satisfy 0 < min (%v) <= level2 (%v) <= level1 (%v)",
			h.MinRatio, h.Level2Ratio, h.Level1Ratio)
	}
	if h.MaxLength <= 0 || h.MaxWords <= 0 {
		return fmt.Errorf("heading length limits must be positive, got %d chars and %d words", h.MaxLength, h.MaxWords)
	}
	if c.BodyFont.NominalSize <= 0 {
		return fmt.Errorf("nominal font size must be positive, got %v", c.BodyFont.NominalSize)
	}
	return nil
}

// Analyzer turns one page's segments into classified lines
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return &Analyzer{config: DefaultConfig()}
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// Config returns the analyzer's configuration
func (a *Analyzer) Config() Config {
	return a.config
}

// PageResult holds the intermediate and final structures for one page
type PageResult struct {
	Rows  []Row
	Lines []Line
}

// Analyze clusters a page's segments into rows and assembles them into
// lines, top of page first.
func (a *Analyzer) Analyze(segments []text.Segment) PageResult {
	rows := ClusterRows(segments, a.config.Line)
	return PageResult{
		Rows:  rows,
		Lines: BuildLines(rows, a.config.Line),
	}
}

// AnalyzeRuns normalizes raw runs and analyzes the resulting segments.
func (a *Analyzer) AnalyzeRuns(runs []text.Run) PageResult {
	return a.Analyze(text.NormalizeAll(runs))
}
