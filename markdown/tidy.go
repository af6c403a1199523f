package markdown

import (
	"regexp"
	"strings"
)

var (
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
	extraNewlines = regexp.MustCompile(`\n{3,}`)
)

// Tidy strips trailing whitespace from every line, collapses three or more
// consecutive newlines to a single blank line and trims the block.
func Tidy(s string) string {
	s = trailingSpace.ReplaceAllString(s, "\n")
	s = extraNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
