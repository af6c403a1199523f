package pdfmd

import (
	"errors"
	"fmt"
)

var (
	// ErrPageLimitExceeded matches a *PageLimitError with errors.Is
	ErrPageLimitExceeded = errors.New("page limit exceeded")

	// ErrNoExtractableText is returned when no page yields any text line,
	// which usually means the PDF is a scanned image
	ErrNoExtractableText = errors.New("no extractable text")

	// ErrExtractionFailed matches an *ExtractionError with errors.Is
	ErrExtractionFailed = errors.New("extraction failed")
)

// PageLimitError reports a document with more pages than allowed. It is
// returned before any page is extracted.
type PageLimitError struct {
	Actual int
	Max    int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf("document has %d pages, maximum is %d", e.Actual, e.Max)
}

// Is reports whether target is ErrPageLimitExceeded
func (e *PageLimitError) Is(target error) bool {
	return target == ErrPageLimitExceeded
}

// ExtractionError wraps a failure of the text extraction service. Page is
// the 1-based page being extracted, or 0 for a document-level failure.
type ExtractionError struct {
	Page int
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Page == 0 {
		return fmt.Sprintf("extraction failed: %v", e.Err)
	}
	return fmt.Sprintf("page %d: extraction failed: %v", e.Page, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrExtractionFailed
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailed
}
