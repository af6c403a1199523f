package markdown

import (
	"strings"

	"github.com/tsawler/pdfmd/layout"
	"github.com/tsawler/pdfmd/tables"
)

// Options configures Markdown rendering
type Options struct {
	Heading layout.HeadingConfig
	Tables  tables.Config
}

// DefaultOptions returns the standard rendering options
func DefaultOptions() Options {
	return Options{
		Heading: layout.DefaultHeadingConfig(),
		Tables:  tables.DefaultConfig(),
	}
}

// Renderer turns a page's classified lines into a Markdown block
type Renderer struct {
	opts         Options
	bodyFontSize float64
}

// NewRenderer creates a renderer that detects headings relative to
// bodyFontSize.
func NewRenderer(bodyFontSize float64, opts Options) *Renderer {
	return &Renderer{opts: opts, bodyFontSize: bodyFontSize}
}

// BodyFontSize returns the reference font size used for headings
func (r *Renderer) BodyFontSize() float64 {
	return r.bodyFontSize
}

// RenderPage renders lines in order. Runs of tab-bearing lines go through
// table reconstruction and are followed by a blank line; other lines become
// headings, list items or plain text, with a blank line after any line
// marked BreakAfter. The result is tidied and trimmed.
func (r *Renderer) RenderPage(lines []layout.Line) string {
	out := make([]string, 0, len(lines)*2)

	for i := 0; i < len(lines); {
		line := lines[i]

		if line.HasTabs {
			end := i + 1
			for end < len(lines) && lines[end].HasTabs {
				end++
			}
			result := tables.Reconstruct(lines[i:end], r.opts.Tables)
			out = append(out, result.Markdown(), "")
			i = end
			continue
		}

		s := layout.NormalizeListMarker(line.Text)
		if strings.TrimSpace(s) == "" {
			out = append(out, "")
			i++
			continue
		}

		level := layout.ClassifyHeading(s, line.FontSize, r.bodyFontSize, r.opts.Heading)
		out = append(out, level.Prefix()+s)

		if line.BreakAfter {
			out = append(out, "")
		}
		i++
	}

	return Tidy(strings.Join(out, "\n"))
}
