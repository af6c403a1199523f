package pdfmd

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/pdfmd/layout"
	"github.com/tsawler/pdfmd/markdown"
	"github.com/tsawler/pdfmd/model"
	"github.com/tsawler/pdfmd/reader"
)

// Converter provides a fluent interface for converting PDFs to Markdown.
// Each configuration method returns a new Converter, so a configured
// value can be reused as a template.
type Converter struct {
	// Source
	filename string
	source   Source

	// Lifecycle
	reader       *reader.Reader // set when the converter opened the file itself
	sourceOpened bool

	// Configuration
	options convertOptions
}

// metadataSource is implemented by sources that expose document info
type metadataSource interface {
	Metadata() model.Metadata
}

// clone creates a shallow copy of the Converter with a deep copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:     c.filename,
		source:       c.source,
		reader:       c.reader,
		sourceOpened: c.sourceOpened,
		options:      c.options.clone(),
	}
}

// ensureSource opens the file if not already open.
func (c *Converter) ensureSource() error {
	if c.sourceOpened {
		return nil
	}
	if c.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := reader.OpenWithConfig(c.filename, c.options.reader)
	if err != nil {
		return &ExtractionError{Err: fmt.Errorf("failed to open PDF: %w", err)}
	}
	c.reader = r
	c.source = r
	c.sourceOpened = true
	return nil
}

// Close releases the file opened by the Converter. Terminal methods already
// close a file they opened before returning. Sources passed to FromSource
// are left open. It is safe to call Close multiple times.
func (c *Converter) Close() error {
	if c.reader == nil {
		return nil
	}
	err := c.reader.Close()
	c.reader = nil
	c.source = nil
	c.sourceOpened = false
	return err
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Pages restricts conversion to the given pages (1-indexed). Multiple
// calls are cumulative. Pages are converted in ascending order and
// duplicates are ignored.
//
// Example:
//
//	md, err := pdfmd.Open("doc.pdf").Pages(1, 3, 5).ToMarkdown()
func (c *Converter) Pages(pages ...int) *Converter {
	newConv := c.clone()
	newConv.options.pages = append(newConv.options.pages, pages...)
	return newConv
}

// PageRange restricts conversion to a range of pages (1-indexed, inclusive).
func (c *Converter) PageRange(start, end int) *Converter {
	newConv := c.clone()
	for i := start; i <= end; i++ {
		newConv.options.pages = append(newConv.options.pages, i)
	}
	return newConv
}

// MaxPages sets the page limit. Documents with more pages fail with a
// *PageLimitError before any page is read. Zero disables the limit.
func (c *Converter) MaxPages(n int) *Converter {
	newConv := c.clone()
	newConv.options.maxPages = n
	return newConv
}

// ExcludeHeadersAndFooters removes text that repeats at the top or bottom
// of many pages, such as running titles and page numbers. A later
// WithConfig call replaces this setting.
func (c *Converter) ExcludeHeadersAndFooters() *Converter {
	newConv := c.clone()
	newConv.options.config.HeaderFooter.Enabled = true
	return newConv
}

// WithConfig replaces the layout, table and header/footer settings.
func (c *Converter) WithConfig(config Config) *Converter {
	newConv := c.clone()
	newConv.options.config = config
	return newConv
}

// WithReaderConfig replaces the reader configuration used when the
// Converter opens a file itself. It has no effect on FromSource.
func (c *Converter) WithReaderConfig(config reader.Config) *Converter {
	newConv := c.clone()
	newConv.options.reader = config
	return newConv
}

// WithLogger sets the logger for per-page diagnostics. By default nothing
// is logged.
func (c *Converter) WithLogger(logger logrus.FieldLogger) *Converter {
	newConv := c.clone()
	if logger == nil {
		logger = discardLogger()
	}
	newConv.options.logger = logger
	return newConv
}

// ============================================================================
// Terminal Methods
// ============================================================================

// PageCount returns the total number of pages in the document.
func (c *Converter) PageCount() (int, error) {
	opened := !c.sourceOpened
	if err := c.ensureSource(); err != nil {
		return 0, err
	}
	if opened {
		defer c.Close()
	}
	n, err := c.source.PageCount()
	if err != nil {
		return 0, &ExtractionError{Err: err}
	}
	return n, nil
}

// ToMarkdown converts the selected pages and returns the joined Markdown.
//
// Example:
//
//	md, err := pdfmd.Open("doc.pdf").ToMarkdown()
//	if errors.Is(err, pdfmd.ErrNoExtractableText) {
//	    // probably a scanned document
//	}
func (c *Converter) ToMarkdown() (string, error) {
	doc, err := c.Document()
	if err != nil {
		return "", err
	}
	return doc.Markdown(), nil
}

// Document converts the selected pages and returns the per-page results.
func (c *Converter) Document() (*model.Document, error) {
	if err := c.options.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	opened := !c.sourceOpened
	if err := c.ensureSource(); err != nil {
		return nil, err
	}
	if opened {
		defer c.Close()
	}

	doc, err := convert(c.source, c.options)
	if err != nil {
		return nil, err
	}

	if ms, ok := c.source.(metadataSource); ok {
		doc.Metadata = ms.Metadata()
	}
	return doc, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// convert runs the two-pass pipeline: every selected page is analyzed into
// lines, the body font size is estimated over all of them, then each page
// is rendered.
func convert(src Source, opts convertOptions) (*model.Document, error) {
	log := opts.logger

	total, err := src.PageCount()
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}
	if opts.maxPages > 0 && total > opts.maxPages {
		return nil, &PageLimitError{Actual: total, Max: opts.maxPages}
	}

	pages, err := resolvePages(opts.pages, total)
	if err != nil {
		return nil, err
	}

	analyzer := layout.NewAnalyzerWithConfig(opts.config.Layout)
	pageLines := make([][]layout.Line, len(pages))
	lineCount := 0

	for i, n := range pages {
		runs, err := src.PageRuns(n)
		if err != nil {
			return nil, &ExtractionError{Page: n, Err: err}
		}

		result := analyzer.AnalyzeRuns(runs)
		pageLines[i] = result.Lines
		lineCount += len(result.Lines)

		log.WithFields(logrus.Fields{
			"page":  n,
			"runs":  len(runs),
			"rows":  len(result.Rows),
			"lines": len(result.Lines),
		}).Debug("analyzed page")
	}

	if opts.config.HeaderFooter.Enabled {
		lineCount = stripHeadersAndFooters(pageLines, opts.config.HeaderFooter, log)
	}

	if lineCount == 0 {
		return nil, ErrNoExtractableText
	}

	bodyFontSize := layout.BodyFontSize(pageLines, opts.config.Layout.BodyFont)
	renderer := markdown.NewRenderer(bodyFontSize, markdown.Options{
		Heading: opts.config.Layout.Heading,
		Tables:  opts.config.Tables,
	})

	doc := model.NewDocument()
	doc.BodyFontSize = bodyFontSize
	for i, n := range pages {
		doc.AddPage(model.NewPage(n, renderer.RenderPage(pageLines[i]), len(pageLines[i])))
	}

	log.WithFields(logrus.Fields{
		"pages":          doc.PageCount(),
		"lines":          doc.LineCount(),
		"body_font_size": bodyFontSize,
	}).Debug("converted document")

	return doc, nil
}

// stripHeadersAndFooters filters pageLines in place and returns the
// remaining line count.
func stripHeadersAndFooters(pageLines [][]layout.Line, config layout.HeaderFooterConfig, log logrus.FieldLogger) int {
	result := layout.NewHeaderFooterDetectorWithConfig(config).Detect(pageLines)

	count, removed := 0, 0
	for i, lines := range pageLines {
		kept := result.FilterLines(i, lines)
		removed += len(lines) - len(kept)
		pageLines[i] = kept
		count += len(kept)
	}

	log.WithFields(logrus.Fields{
		"headers": len(result.Headers),
		"footers": len(result.Footers),
		"removed": removed,
	}).Debug("stripped headers and footers")
	return count
}

// resolvePages validates 1-indexed page numbers and returns them sorted
// without duplicates. If no pages are specified, returns all pages.
func resolvePages(selected []int, pageCount int) ([]int, error) {
	if len(selected) == 0 {
		pages := make([]int, pageCount)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages, nil
	}

	seen := make(map[int]bool)
	var pages []int
	for _, p := range selected {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}

	sort.Ints(pages)
	return pages, nil
}
