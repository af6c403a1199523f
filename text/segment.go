package text

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultFontSize is used when a run carries no usable font size
	DefaultFontSize = 12.0

	// minDefaultWidth is the smallest width assigned to a run without one
	minDefaultWidth = 4.0

	// defaultCharWidth is the per-character width assumed for runs without one
	defaultCharWidth = 4.0
)

// Segment is a normalized run: non-empty, whitespace-collapsed text with
// complete geometry. Segments are never mutated after creation.
type Segment struct {
	Text     string
	X, Y     float64
	Width    float64
	FontSize float64
}

// Normalize converts a raw run into a Segment. It reports false when the
// run holds only whitespace. Missing geometry is defaulted rather than
// rejected: width becomes max(4, runes*4), font size becomes 12 and
// coordinates become 0.
func Normalize(r Run) (Segment, bool) {
	s := Clean(r.Text)
	if s == "" {
		return Segment{}, false
	}

	width := r.Width
	if !isPositive(width) {
		width = math.Max(minDefaultWidth, float64(utf8.RuneCountInString(s))*defaultCharWidth)
	}

	fontSize := r.FontSize()
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}

	return Segment{
		Text:     s,
		X:        r.X(),
		Y:        r.Y(),
		Width:    width,
		FontSize: fontSize,
	}, true
}

// NormalizeAll normalizes a page's runs, dropping whitespace-only runs and
// keeping the input order of the rest.
func NormalizeAll(runs []Run) []Segment {
	segments := make([]Segment, 0, len(runs))
	for _, r := range runs {
		if seg, ok := Normalize(r); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}

// ligatures expands the Latin typographic ligatures PDF fonts often emit
var ligatures = strings.NewReplacer(
	"\ufb00", "ff",
	"\ufb01", "fi",
	"\ufb02", "fl",
	"\ufb03", "ffi",
	"\ufb04", "ffl",
	"\ufb05", "st",
	"\ufb06", "st",
)

// Clean repairs invalid UTF-8, composes the text to NFC, expands Latin
// ligatures such as "ﬁ" and collapses every whitespace run (including
// non-breaking spaces) to a single space. Superscripts, fractions and other
// compatibility characters are kept as they are.
func Clean(s string) string {
	s = strings.ToValidUTF8(s, "�")
	s = norm.NFC.String(s)
	s = ligatures.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
