package layout

import (
	"fmt"
	"testing"
)

// page builds a page of lines from text/baseline pairs, top to bottom
func page(entries ...any) []Line {
	var lines []Line
	for i := 0; i+1 < len(entries); i += 2 {
		lines = append(lines, Line{Text: entries[i].(string), Y: entries[i+1].(float64), FontSize: 10})
	}
	return lines
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestHeaderFooterDetector_NoPages(t *testing.T) {
	result := NewHeaderFooterDetector().Detect(nil)

	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if result.HasHeadersOrFooters() {
		t.Error("expected no headers or footers for empty input")
	}
}

func TestHeaderFooterDetector_SinglePage(t *testing.T) {
	pages := [][]Line{
		page("Document Title", 750.0, "Body", 400.0, "Page 1", 50.0),
	}

	result := NewHeaderFooterDetector().Detect(pages)

	if result.HasHeadersOrFooters() {
		t.Error("expected no headers/footers with single page")
	}
}

func TestHeaderFooterDetector_ConsistentHeader(t *testing.T) {
	var pages [][]Line
	for i := 1; i <= 3; i++ {
		pages = append(pages, page(
			"Company Report 2024", 760.0,
			fmt.Sprintf("Body text on page %d with distinct words %s", i, string(rune('a'+i))), 600.0,
			"Closing paragraph for this page", 300.0,
		))
	}

	result := NewHeaderFooterDetector().Detect(pages)

	if len(result.Headers) != 1 {
		t.Fatalf("expected 1 header, got %d", len(result.Headers))
	}
	h := result.Headers[0]
	if h.Text != "Company Report 2024" {
		t.Errorf("header text = %q", h.Text)
	}
	if h.Type != Header || h.Type.String() != "header" {
		t.Errorf("header type = %v", h.Type)
	}
	if len(h.Pages) != 3 {
		t.Errorf("expected header on 3 pages, got %v", h.Pages)
	}
}

func TestHeaderFooterDetector_PageNumbers(t *testing.T) {
	var pages [][]Line
	for i := 1; i <= 4; i++ {
		pages = append(pages, page(
			fmt.Sprintf("Section %c opens here", 'A'+i), 700.0,
			fmt.Sprintf("Some text %c", 'a'+i), 400.0,
			fmt.Sprintf("Page %d of 4", i), 40.0,
		))
	}

	result := NewHeaderFooterDetector().Detect(pages)

	if len(result.Footers) != 1 {
		t.Fatalf("expected 1 footer, got %d", len(result.Footers))
	}
	f := result.Footers[0]
	if !f.IsPageNumber || f.Text != "[Page Number]" {
		t.Errorf("expected page number footer, got %+v", f)
	}
	if f.Type.String() != "footer" {
		t.Errorf("footer type = %v", f.Type)
	}
}

func TestHeaderFooterDetector_InconsistentPosition(t *testing.T) {
	pages := [][]Line{
		page("Running Title", 760.0, "body one", 400.0),
		page("Running Title", 700.0, "body two", 400.0),
		page("Running Title", 640.0, "body three", 400.0),
	}

	result := NewHeaderFooterDetector().Detect(pages)

	if len(result.Headers) != 0 {
		t.Errorf("expected no headers when position drifts, got %+v", result.Headers)
	}
}

func TestHeaderFooterDetector_BelowOccurrenceRatio(t *testing.T) {
	pages := [][]Line{
		page("Appendix Notes", 760.0, "a body line", 400.0),
		page("Appendix Notes", 760.0, "b body line", 400.0),
		page("Other Heading", 760.0, "c body line", 400.0),
		page("Different Heading", 760.0, "d body line", 400.0),
		page("Another Heading", 760.0, "e body line", 400.0),
		page("Final Heading", 760.0, "f body line", 400.0),
	}

	result := NewHeaderFooterDetector().Detect(pages)

	for _, h := range result.Headers {
		if h.Text == "Appendix Notes" {
			t.Errorf("text on 2 of 6 pages should not be a header")
		}
	}
}

func TestHeaderFooterDetector_IgnoresInteriorLines(t *testing.T) {
	var pages [][]Line
	for i := 0; i < 3; i++ {
		pages = append(pages, page(
			fmt.Sprintf("Top %c", 'A'+i), 760.0,
			fmt.Sprintf("Second %c", 'A'+i), 740.0,
			"Repeated interior text", 500.0,
			fmt.Sprintf("Bottom %c", 'A'+i), 60.0,
			fmt.Sprintf("Last %c", 'A'+i), 40.0,
		))
	}

	result := NewHeaderFooterDetector().Detect(pages)

	if result.HasHeadersOrFooters() {
		t.Errorf("interior lines must not be detected, got headers %+v footers %+v", result.Headers, result.Footers)
	}
}

func TestEdgeWindowsDoNotOverlap(t *testing.T) {
	tests := []struct {
		n, edgeLines           int
		headerStart, headerEnd int
		footerStart, footerEnd int
	}{
		{0, 2, 0, 0, 0, 0},
		{1, 2, 0, 1, 1, 1},
		{2, 2, 0, 1, 1, 2},
		{3, 2, 0, 2, 2, 3},
		{4, 2, 0, 2, 2, 4},
		{10, 2, 0, 2, 8, 10},
	}
	for _, tt := range tests {
		hs, he := edge(tt.n, tt.edgeLines, Header)
		fs, fe := edge(tt.n, tt.edgeLines, Footer)
		if hs != tt.headerStart || he != tt.headerEnd {
			t.Errorf("edge(%d, %d, Header) = %d, %d, want %d, %d", tt.n, tt.edgeLines, hs, he, tt.headerStart, tt.headerEnd)
		}
		if fs != tt.footerStart || fe != tt.footerEnd {
			t.Errorf("edge(%d, %d, Footer) = %d, %d, want %d, %d", tt.n, tt.edgeLines, fs, fe, tt.footerStart, tt.footerEnd)
		}
		if fs < he {
			t.Errorf("n=%d: footer window starts at %d inside header window ending at %d", tt.n, fs, he)
		}
	}
}

func TestHeaderFooterDetector_ShortPages(t *testing.T) {
	var pages [][]Line
	for i := 1; i <= 3; i++ {
		pages = append(pages, page("Running Title", 760.0, fmt.Sprintf("Page %d", i), 40.0))
	}

	result := NewHeaderFooterDetector().Detect(pages)

	if len(result.Headers) != 1 || result.Headers[0].Text != "Running Title" {
		t.Errorf("headers = %+v, want only Running Title", result.Headers)
	}
	if len(result.Footers) != 1 || !result.Footers[0].IsPageNumber {
		t.Errorf("footers = %+v, want only the page number", result.Footers)
	}
	if got := result.FilterLines(0, pages[0]); len(got) != 0 {
		t.Errorf("FilterLines = %q, want none", texts(got))
	}
}

func TestHeaderFooterResult_FilterLines(t *testing.T) {
	var pages [][]Line
	for i := 1; i <= 3; i++ {
		pages = append(pages, page(
			"Annual Review", 760.0,
			fmt.Sprintf("Content %c", 'A'+i), 600.0,
			fmt.Sprintf("- %d -", i), 40.0,
		))
	}

	result := NewHeaderFooterDetector().Detect(pages)
	if !result.HasHeadersOrFooters() {
		t.Fatal("expected detection")
	}

	got := texts(result.FilterLines(1, pages[1]))
	if len(got) != 1 || got[0] != "Content C" {
		t.Errorf("FilterLines = %q, want [Content C]", got)
	}
	if len(pages[1]) != 3 {
		t.Error("FilterLines must not modify its input")
	}

	// Same text at another position survives
	moved := page("Annual Review", 300.0, "Other", 200.0)
	if got := result.FilterLines(0, moved); len(got) != 2 {
		t.Errorf("expected moved line to survive, got %q", texts(got))
	}
}

func TestHeaderFooterResult_FilterLinesNil(t *testing.T) {
	var result *HeaderFooterResult
	lines := page("Only", 100.0)
	if got := result.FilterLines(0, lines); len(got) != 1 {
		t.Errorf("nil result should keep lines, got %q", texts(got))
	}
}

func TestNormalizeForComparison(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Page 12", "Page #"},
		{"3 of 10", "# of #"},
		{"No digits", "No digits"},
	}
	for _, tt := range tests {
		if got := normalizeForComparison(tt.in); got != tt.want {
			t.Errorf("normalizeForComparison(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsPageNumberPattern(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#", true},
		{"page #", true},
		{"Page # of #", true},
		{"- # -", true},
		{"Chapter #", false},
		{"Report", false},
	}
	for _, tt := range tests {
		if got := isPageNumberPattern(tt.in); got != tt.want {
			t.Errorf("isPageNumberPattern(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHeaderFooterConfig_Validate(t *testing.T) {
	if err := DefaultHeaderFooterConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	mutations := []func(*HeaderFooterConfig){
		func(c *HeaderFooterConfig) { c.EdgeLines = 0 },
		func(c *HeaderFooterConfig) { c.MinOccurrenceRatio = 1.5 },
		func(c *HeaderFooterConfig) { c.PositionTolerance = -1 },
		func(c *HeaderFooterConfig) { c.MinPages = 1 },
	}
	for i, mutate := range mutations {
		c := DefaultHeaderFooterConfig()
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("mutation %d: expected error", i)
		}
	}
}
