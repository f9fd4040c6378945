// Package slug derives URL-safe identifiers from article titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonWord     = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace  = regexp.MustCompile(`[\s_]+`)
	multiHyphen = regexp.MustCompile(`-{2,}`)
	validSlug   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

var transliterations = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// Make converts a title into a lowercase hyphenated slug.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = transliterations.Replace(s)
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Valid reports whether s is a well-formed slug: lowercase alphanumeric
// segments separated by single hyphens.
func Valid(s string) bool {
	return validSlug.MatchString(s)
}
