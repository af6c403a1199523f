// Package layout reconstructs text lines from positioned segments and
// classifies them for Markdown rendering.
//
// # Pipeline
//
// A page is processed in three steps:
//
//   - [ClusterRows] buckets segments by quantized baseline and orders each
//     row left to right
//   - [AssembleRow] joins a row's segments, inferring spaces and tabs from
//     horizontal gaps
//   - [BuildLines] computes each line's mean font size and whether a
//     paragraph break follows it
//
// The [Analyzer] runs all three:
//
//	analyzer := layout.NewAnalyzer()
//	result := analyzer.Analyze(segments)
//
// # Classification
//
// [BodyFontSize] estimates the document-wide body font size from the lines
// of every page. [ClassifyHeading] compares a line against it, and
// [NormalizeListMarker] rewrites bullet glyphs and "(n)" markers as
// Markdown list markers.
//
// # Configuration
//
// Every threshold lives in [Config]:
//
//	config := layout.DefaultConfig()
//	config.Heading.MinRatio = 1.2
//	analyzer := layout.NewAnalyzerWithConfig(config)
//
// # Headers and Footers
//
// [HeaderFooterDetector] finds lines that repeat at the same baseline near
// the top or bottom of many pages. Page numbers match across pages because
// digits are ignored when comparing text:
//
//	result := layout.NewHeaderFooterDetector().Detect(pageLines)
//	lines := result.FilterLines(0, pageLines[0])
//
// Rows are found by baseline alone. Text from side-by-side columns that
// shares a baseline is merged into one line.
package layout
