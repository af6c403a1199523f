package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for the summary header
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted paths and hints
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// summary collects per-file outcomes of a convert run.
type summary struct {
	lines     []string
	converted int
	cached    int
	failed    int
}

func (s *summary) ok(input, dest string, cached bool) {
	s.converted++
	note := ""
	if cached {
		s.cached++
		note = dimStyle.Render(" (cached)")
	}
	s.lines = append(s.lines, fmt.Sprintf("%s %s %s %s%s",
		successStyle.Render("OK"), input, dimStyle.Render("->"), dest, note))
}

func (s *summary) fail(input string, err error) {
	s.failed++
	line := fmt.Sprintf("%s %s: %v", errorStyle.Render("FAIL"), input, err)
	if h := hint(err); h != "" {
		line += "\n     " + dimStyle.Render(h)
	}
	s.lines = append(s.lines, line)
}

// render writes the summary box to w.
func (s *summary) render(w io.Writer) {
	counts := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("Converted:"), s.converted,
		dimStyle.Render("Cached:"), s.cached,
		dimStyle.Render("Failed:"), s.failed,
	)
	content := titleStyle.Render("pdfmd") + "\n" + strings.Join(s.lines, "\n") + "\n" + counts
	fmt.Fprintln(w, boxStyle.Render(content))
}
