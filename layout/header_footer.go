package layout

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// RegionType indicates whether a region is a header or footer
type RegionType int

const (
	Header RegionType = iota
	Footer
)

func (r RegionType) String() string {
	if r == Header {
		return "header"
	}
	return "footer"
}

// HeaderFooterConfig holds configuration for header/footer detection
type HeaderFooterConfig struct {
	// Enabled turns removal of detected headers and footers on
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// EdgeLines is how many lines at the top and at the bottom of each page
	// are considered
	// Default: 2
	EdgeLines int `yaml:"edge_lines" mapstructure:"edge_lines"`

	// MinOccurrenceRatio is the minimum fraction of pages a text must appear on
	// to be considered a header/footer (0.0 to 1.0)
	// Default: 0.5 (50% of pages)
	MinOccurrenceRatio float64 `yaml:"min_occurrence_ratio" mapstructure:"min_occurrence_ratio"`

	// PositionTolerance is the maximum baseline difference for text to be
	// considered at the same position
	// Default: 5 points
	PositionTolerance float64 `yaml:"position_tolerance" mapstructure:"position_tolerance"`

	// MinPages is the minimum number of pages required for detection
	// Default: 2
	MinPages int `yaml:"min_pages" mapstructure:"min_pages"`
}

// DefaultHeaderFooterConfig returns sensible default configuration.
// Detection is disabled by default.
func DefaultHeaderFooterConfig() HeaderFooterConfig {
	return HeaderFooterConfig{
		Enabled:            false,
		EdgeLines:          2,
		MinOccurrenceRatio: 0.5,
		PositionTolerance:  5.0,
		MinPages:           2,
	}
}

// Validate rejects settings that would make detection meaningless
func (c HeaderFooterConfig) Validate() error {
	if c.EdgeLines < 1 {
		return fmt.Errorf("edge_lines must be at least 1, got %d", c.EdgeLines)
	}
	if c.MinOccurrenceRatio < 0 || c.MinOccurrenceRatio > 1 {
		return fmt.Errorf("min_occurrence_ratio must be between 0 and 1, got %g", c.MinOccurrenceRatio)
	}
	if c.PositionTolerance < 0 {
		return fmt.Errorf("position_tolerance must not be negative, got %g", c.PositionTolerance)
	}
	if c.MinPages < 2 {
		return fmt.Errorf("min_pages must be at least 2, got %d", c.MinPages)
	}
	return nil
}

// HeaderFooterRegion represents a detected header or footer
type HeaderFooterRegion struct {
	Type RegionType

	// Text is the typical text content, or "[Page Number]"
	Text string

	// IsPageNumber indicates if this region contains page numbers
	IsPageNumber bool

	// Pages lists the indices of the pages that carry this region
	Pages []int

	key string
	y   float64
}

// HeaderFooterResult contains the detection results
type HeaderFooterResult struct {
	Headers []HeaderFooterRegion
	Footers []HeaderFooterRegion
	Config  HeaderFooterConfig
}

// HeaderFooterDetector detects running headers and footers across pages
type HeaderFooterDetector struct {
	config HeaderFooterConfig
}

// NewHeaderFooterDetector creates a new detector with default configuration
func NewHeaderFooterDetector() *HeaderFooterDetector {
	return &HeaderFooterDetector{
		config: DefaultHeaderFooterConfig(),
	}
}

// NewHeaderFooterDetectorWithConfig creates a detector with custom configuration
func NewHeaderFooterDetectorWithConfig(config HeaderFooterConfig) *HeaderFooterDetector {
	return &HeaderFooterDetector{
		config: config,
	}
}

type candidate struct {
	text string
	key  string
	y    float64
	page int
}

// Detect finds lines that repeat at the same position near the top or
// bottom of many pages. Digit runs are ignored when comparing text, so
// "Page 3" and "Page 4" match.
func (d *HeaderFooterDetector) Detect(pages [][]Line) *HeaderFooterResult {
	result := &HeaderFooterResult{Config: d.config}
	if len(pages) < d.config.MinPages || d.config.EdgeLines <= 0 {
		return result
	}

	result.Headers = d.findRepeatingPatterns(d.extractCandidates(pages, Header), len(pages), Header)
	result.Footers = d.findRepeatingPatterns(d.extractCandidates(pages, Footer), len(pages), Footer)
	return result
}

// edge returns the index range of the candidate lines of one region on a
// page of n lines. The windows never overlap: on short pages the header
// takes the upper half (rounded up) and the footer what remains.
func edge(n, edgeLines int, regionType RegionType) (int, int) {
	header := min(edgeLines, (n+1)/2)
	if regionType == Header {
		return 0, header
	}
	return n - min(edgeLines, n-header), n
}

func (d *HeaderFooterDetector) extractCandidates(pages [][]Line, regionType RegionType) []candidate {
	var candidates []candidate
	for i, lines := range pages {
		start, end := edge(len(lines), d.config.EdgeLines, regionType)
		for _, line := range lines[start:end] {
			text := strings.TrimSpace(line.Text)
			candidates = append(candidates, candidate{
				text: text,
				key:  normalizeForComparison(text),
				y:    line.Y,
				page: i,
			})
		}
	}
	return candidates
}

func (d *HeaderFooterDetector) findRepeatingPatterns(candidates []candidate, pageCount int, regionType RegionType) []HeaderFooterRegion {
	groups := make(map[string][]candidate)
	for _, c := range candidates {
		groups[c.key] = append(groups[c.key], c)
	}

	minOccurrences := max(int(float64(pageCount)*d.config.MinOccurrenceRatio), 2)

	var regions []HeaderFooterRegion
	for key, group := range groups {
		// Single characters are likely fragments of larger text
		if len(key) <= 2 && !isPageNumberPattern(key) {
			continue
		}

		pageSet := make(map[int]bool)
		for _, c := range group {
			pageSet[c.page] = true
		}
		if len(pageSet) < minOccurrences {
			continue
		}
		if !d.hasConsistentPosition(group) {
			continue
		}

		isPageNum := isPageNumberPattern(key)
		text := group[0].text
		if isPageNum {
			text = "[Page Number]"
		}

		pages := make([]int, 0, len(pageSet))
		for p := range pageSet {
			pages = append(pages, p)
		}
		sort.Ints(pages)

		regions = append(regions, HeaderFooterRegion{
			Type:         regionType,
			Text:         text,
			IsPageNumber: isPageNum,
			Pages:        pages,
			key:          key,
			y:            group[0].y,
		})
	}

	sort.Slice(regions, func(i, j int) bool {
		if len(regions[i].Pages) != len(regions[j].Pages) {
			return len(regions[i].Pages) > len(regions[j].Pages)
		}
		return regions[i].key < regions[j].key
	})
	return regions
}

func (d *HeaderFooterDetector) hasConsistentPosition(group []candidate) bool {
	if len(group) < 2 {
		return false
	}
	for _, c := range group[1:] {
		if math.Abs(c.y-group[0].y) > d.config.PositionTolerance {
			return false
		}
	}
	return true
}

var digitRun = regexp.MustCompile(`\d+`)

// normalizeForComparison replaces digit runs with a placeholder
func normalizeForComparison(text string) string {
	return digitRun.ReplaceAllString(text, "#")
}

// isPageNumberPattern checks if normalized text looks like a page number
func isPageNumberPattern(normalizedText string) bool {
	patterns := []string{
		"#",
		"Page #",
		"- # -",
		"# of #",
		"Page # of #",
		"#/#",
		"p. #",
		"pg. #",
	}

	trimmed := strings.TrimSpace(normalizedText)
	for _, pattern := range patterns {
		if strings.EqualFold(trimmed, pattern) {
			return true
		}
	}
	return false
}

// FilterLines removes detected headers and footers from the lines of the
// page at pageIndex. Only lines within the configured edge windows are
// removed; the input slice is not modified.
func (r *HeaderFooterResult) FilterLines(pageIndex int, lines []Line) []Line {
	if r == nil || !r.HasHeadersOrFooters() || len(lines) == 0 {
		return lines
	}

	drop := make([]bool, len(lines))
	mark := func(regions []HeaderFooterRegion, regionType RegionType) {
		start, end := edge(len(lines), r.Config.EdgeLines, regionType)
		for i := start; i < end; i++ {
			if r.matches(regions, pageIndex, lines[i]) {
				drop[i] = true
			}
		}
	}
	mark(r.Headers, Header)
	mark(r.Footers, Footer)

	kept := make([]Line, 0, len(lines))
	for i, line := range lines {
		if !drop[i] {
			kept = append(kept, line)
		}
	}
	return kept
}

func (r *HeaderFooterResult) matches(regions []HeaderFooterRegion, pageIndex int, line Line) bool {
	key := normalizeForComparison(strings.TrimSpace(line.Text))
	for _, region := range regions {
		if region.key != key || math.Abs(region.y-line.Y) > r.Config.PositionTolerance {
			continue
		}
		if i := sort.SearchInts(region.Pages, pageIndex); i < len(region.Pages) && region.Pages[i] == pageIndex {
			return true
		}
	}
	return false
}

// HasHeadersOrFooters returns true if any region was detected
func (r *HeaderFooterResult) HasHeadersOrFooters() bool {
	return len(r.Headers) > 0 || len(r.Footers) > 0
}
