package model

// Page represents a single converted page
type Page struct {
	Number    int    // 1-indexed source page number
	Markdown  string // rendered page block, trimmed
	LineCount int    // lines recovered from the page
}

// NewPage creates a page result
func NewPage(number int, markdown string, lineCount int) *Page {
	return &Page{
		Number:    number,
		Markdown:  markdown,
		LineCount: lineCount,
	}
}

// IsEmpty reports whether the page produced no Markdown
func (p *Page) IsEmpty() bool {
	return p.Markdown == ""
}
