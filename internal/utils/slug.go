package utils

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	repeatedDash = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases the title and collapses everything that is not
// a letter or digit into single dashes.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = repeatedDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
