// Package reader extracts positioned text runs from PDF files.
//
// It wraps github.com/ledongthuc/pdf, which reports text one glyph at a
// time, and coalesces consecutive glyphs that share a font and baseline
// into runs. Word-sized gaps inside a run become single spaces; wider gaps
// split runs so that line assembly can decide between spaces and tabs.
//
// # Opening PDF Files
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
// Or use [NewReader] with any io.ReaderAt. Inputs larger than
// [Config.MaxBytes] are rejected with a [*SizeLimitError] and inputs
// without a PDF header with [ErrNotPDF], both before parsing begins.
//
// # Page Access
//
// Pages are numbered from 1:
//
//	n, _ := r.PageCount()
//	runs, err := r.PageRuns(1)
//
// Decoder panics on malformed content streams are recovered and returned
// as errors.
package reader
