package phrase

import "strings"

// NormalizeWhitespace collapses every whitespace run to a single space and
// strips leading/trailing whitespace. Word content and punctuation are left
// untouched.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
