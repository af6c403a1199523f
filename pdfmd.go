// Package pdfmd reconstructs readable Markdown from the positioned text of
// a PDF.
//
// Basic usage:
//
//	md, err := pdfmd.Open("document.pdf").ToMarkdown()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	md, err := pdfmd.Open("report.pdf").
//	    Pages(1, 2, 3).
//	    MaxPages(50).
//	    WithLogger(logger).
//	    ToMarkdown()
//
// Text runs that were already extracted by other means can be converted
// directly:
//
//	md, err := pdfmd.TextToMarkdown(pages)
//
// Conversion groups runs into rows by baseline, joins each row into a line
// (wide gaps become tabs), estimates the body font size across the whole
// document, and renders headings, list items, paragraphs and pipe tables.
// Output is deterministic for a given input.
package pdfmd

import (
	"github.com/tsawler/pdfmd/text"
)

// Source supplies positioned text runs page by page. Pages are numbered
// from 1. *reader.Reader implements Source.
type Source interface {
	PageCount() (int, error)
	PageRuns(page int) ([]text.Run, error)
}

// Open returns a Converter for a PDF file. The file is opened lazily by
// the first terminal operation and closed by Close.
//
// Example:
//
//	md, err := pdfmd.Open("document.pdf").ToMarkdown()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource returns a Converter over an existing Source. The caller keeps
// ownership of the source.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	md, err := pdfmd.FromSource(r).ToMarkdown()
func FromSource(src Source) *Converter {
	return &Converter{
		source:       src,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	md := pdfmd.Must(pdfmd.Open("document.pdf").ToMarkdown())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// TextToMarkdown converts already extracted runs, one slice per page, with
// the default configuration.
func TextToMarkdown(pages [][]text.Run) (string, error) {
	return FromSource(runSource(pages)).ToMarkdown()
}

// TextToMarkdownWithConfig converts already extracted runs with a custom
// layout configuration.
func TextToMarkdownWithConfig(pages [][]text.Run, config Config) (string, error) {
	return FromSource(runSource(pages)).WithConfig(config).ToMarkdown()
}

// runSource serves pre-extracted runs
type runSource [][]text.Run

func (s runSource) PageCount() (int, error) {
	return len(s), nil
}

func (s runSource) PageRuns(page int) ([]text.Run, error) {
	return s[page-1], nil
}
