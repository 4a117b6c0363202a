package wikimd

import "strings"

// Sanitize removes the "[]" and "[\n]" artifacts left behind once citation
// markers have been reduced to their text content. The two patterns are
// replaced one after the other, so "[[]\n]" collapses completely.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "[]", "")
	return strings.ReplaceAll(s, "[\n]", "")
}
