// Package markdown renders classified lines as Markdown.
//
// A [Renderer] is created once per document with the document's body font
// size and renders each page independently:
//
//	r := markdown.NewRenderer(bodyFontSize, markdown.DefaultOptions())
//	first := r.RenderPage(page1)
//	second := r.RenderPage(page2)
//
// Headings use "#" to "###", bullet glyphs become "- " items, "(n)" markers
// become "n." items and tab-separated blocks become pipe tables when they
// are regular enough.
package markdown
