// Package model provides the result types produced by a conversion.
//
// # Document Structure
//
// A [Document] holds one [Page] per converted source page, in source order,
// along with the PDF's metadata and the body font size the conversion used:
//
//	doc := model.NewDocument()
//	doc.AddPage(model.NewPage(1, "# Title", 1))
//	md := doc.Markdown()
//
// Pages are joined with [PageSeparator], a Markdown thematic break.
//
// # Tables
//
// The [Table] type holds rows of [Cell] values and exports them as a
// Markdown pipe table with ToMarkdown. Ragged rows are padded and literal
// pipes escaped on export.
package model
