package model

import "strings"

// PageSeparator is the thematic break placed between pages in the
// document's Markdown
const PageSeparator = "\n\n---\n\n"

// Document represents a converted PDF document
type Document struct {
	Metadata Metadata
	Pages    []*Page

	// BodyFontSize is the reference font size used for heading detection
	BodyFontSize float64
}

// Metadata contains document-level information from the PDF Info dictionary
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// PageCount returns the number of converted pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// LineCount returns the number of lines across all pages
func (d *Document) LineCount() int {
	total := 0
	for _, p := range d.Pages {
		total += p.LineCount
	}
	return total
}

// Markdown joins the non-empty page blocks with PageSeparator, in page
// order, and trims the result.
func (d *Document) Markdown() string {
	blocks := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		if p.Markdown != "" {
			blocks = append(blocks, p.Markdown)
		}
	}
	return strings.TrimSpace(strings.Join(blocks, PageSeparator))
}
