package tables

import (
	"fmt"
	"strings"

	"github.com/tsawler/pdfmd/layout"
	"github.com/tsawler/pdfmd/model"
)

// Config holds the acceptance rules for tab-separated blocks
type Config struct {
	// MinRows is the minimum number of lines for a valid table
	MinRows int `yaml:"min_rows" mapstructure:"min_rows"`

	// MinCols is the minimum cell count of the widest row
	MinCols int `yaml:"min_cols" mapstructure:"min_cols"`

	// MaxColumnSpread is the largest allowed difference between the widest
	// and narrowest row's cell counts
	MaxColumnSpread int `yaml:"max_column_spread" mapstructure:"max_column_spread"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinRows:         2,
		MinCols:         2,
		MaxColumnSpread: 1,
	}
}

// Validate reports acceptance rules that no block could satisfy
func (c Config) Validate() error {
	if c.MinRows < 1 || c.MinCols < 1 {
		return fmt.Errorf("table minimums must be at least 1, got %d rows and %d cols", c.MinRows, c.MinCols)
	}
	if c.MaxColumnSpread < 0 {
		return fmt.Errorf("max column spread must not be negative, got %d", c.MaxColumnSpread)
	}
	return nil
}

// Result is the outcome of reconstructing a tab-separated block: either a
// *Table or a *FlattenedLines.
type Result interface {
	// Markdown renders the result without a trailing newline
	Markdown() string

	isResult()
}

// Table is an accepted block
type Table struct {
	*model.Table
}

// Markdown renders the pipe table
func (t *Table) Markdown() string {
	return t.ToMarkdown()
}

func (*Table) isResult() {}

// FlattenedLines is a rejected block degraded to plain lines
type FlattenedLines struct {
	Lines []string
}

// Markdown renders one line per entry
func (f *FlattenedLines) Markdown() string {
	return strings.Join(f.Lines, "\n")
}

func (*FlattenedLines) isResult() {}

// SplitCells splits a line on tabs into trimmed cells
func SplitCells(s string) []string {
	parts := strings.Split(s, "\t")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Accepts reports whether rows of cells form a table: enough rows, a wide
// enough widest row, and cell counts within MaxColumnSpread of each other.
func (c Config) Accepts(rows [][]string) bool {
	if len(rows) < c.MinRows || len(rows) == 0 {
		return false
	}
	minCols, maxCols := columnRange(rows)
	return maxCols >= c.MinCols && maxCols-minCols <= c.MaxColumnSpread
}

// Reconstruct decides whether a contiguous block of tab-bearing lines is a
// table. Accepted blocks become a padded pipe table with the first line as
// header; rejected blocks are flattened to single-spaced lines with list
// markers normalized.
func Reconstruct(block []layout.Line, config Config) Result {
	rows := make([][]string, len(block))
	for i, line := range block {
		rows[i] = SplitCells(line.Text)
	}

	if config.Accepts(rows) {
		table := model.NewTableFromStrings(rows)
		table.Pad(table.ColCount())
		return &Table{Table: table}
	}

	return Flatten(block)
}

// Flatten degrades lines to plain text: tabs become spaces, runs of spaces
// collapse and list markers are normalized. Lines left empty are dropped.
func Flatten(block []layout.Line) *FlattenedLines {
	lines := make([]string, 0, len(block))
	for _, line := range block {
		s := strings.Join(strings.Fields(strings.ReplaceAll(line.Text, "\t", " ")), " ")
		s = layout.NormalizeListMarker(s)
		if s != "" {
			lines = append(lines, s)
		}
	}
	return &FlattenedLines{Lines: lines}
}

func columnRange(rows [][]string) (minCols, maxCols int) {
	minCols = len(rows[0])
	maxCols = len(rows[0])
	for _, row := range rows[1:] {
		minCols = min(minCols, len(row))
		maxCols = max(maxCols, len(row))
	}
	return minCols, maxCols
}
