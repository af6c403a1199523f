package layout

import "regexp"

// bulletCharacters are the glyphs rewritten to a Markdown "- " marker
const bulletCharacters = "•◦▪▸►‣"

var (
	bulletPrefix       = regexp.MustCompile(`^[` + bulletCharacters + `]\s*`)
	parenNumberPrefix  = regexp.MustCompile(`^\((\d+)\)\s+`)
	markdownListPrefix = regexp.MustCompile(`^(?:[-*+]|\d+[.)])\s`)
)

// NormalizeListMarker rewrites a leading bullet glyph to "- " and a leading
// "(n) " to "n. ". Other text is returned unchanged.
func NormalizeListMarker(s string) string {
	if loc := bulletPrefix.FindStringIndex(s); loc != nil {
		return "- " + s[loc[1]:]
	}
	return parenNumberPrefix.ReplaceAllString(s, "$1. ")
}

// IsListItem reports whether s starts with a bullet glyph or a Markdown
// bullet or numbered-list marker.
func IsListItem(s string) bool {
	return bulletPrefix.MatchString(s) || markdownListPrefix.MatchString(s)
}
