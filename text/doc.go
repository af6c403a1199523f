// Package text holds the raw text runs reported by a PDF extraction library
// and the normalized segments the layout analysis works on.
//
// # Runs
//
// A [Run] is what an extraction library yields per page: a string, a text
// matrix, a width and a height. Any of the numeric fields may be missing or
// garbage in damaged files.
//
//	run := text.NewRun("Quarterly report", 72, 720, 96, 18)
//
// # Segments
//
// [Normalize] turns a run into a [Segment] with clean text and complete
// geometry, or reports false for whitespace-only runs:
//
//	segments := text.NormalizeAll(runs)
//
// Geometry defaults favour keeping text over dropping it: a slightly
// misplaced segment costs less than a missing page.
package text
