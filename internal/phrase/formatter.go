package phrase

import "strings"

// FormatWithSpacing joins phrases with a blank line between consecutive
// phrases. An empty sequence yields an empty string; there is no trailing
// separator.
func FormatWithSpacing(phrases []string) string {
	return strings.Join(phrases, "\n\n")
}

// SplitTranscript splits a transcript and returns the phrases joined with
// blank-line spacing, ready for display.
func SplitTranscript(transcript string) string {
	return FormatWithSpacing(Split(transcript))
}
