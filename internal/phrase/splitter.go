package phrase

import "strings"

// colonLookahead is how many runes past a colon the scanner searches for an
// opening quote before giving up.
const colonLookahead = 9

// Split segments a transcript into sentence- and dialogue-aware phrases.
//
// The text is whitespace-normalized, then scanned left to right once. A
// sentence terminator (. ! ?) followed by whitespace, a quote character or
// end of text closes the current phrase when the next non-space character is
// an uppercase ASCII letter, a quote character, or absent. Quoted spans
// suppress sentence detection until the matching closing quote; a quoted span
// introduced by a colon (e.g. `She said: "Hello there."`) is flushed as its
// own phrase the moment it closes, lead-in clause included.
//
// Empty or whitespace-only input yields an empty sequence. Phrases are
// trimmed and never empty.
func Split(text string) []string {
	normalized := NormalizeWhitespace(text)
	if normalized == "" {
		return nil
	}

	runes := []rune(normalized)

	var phrases []string
	var buf []rune

	inQuotes := false
	var expectedClose rune
	afterColon := false
	colonQuotePending := false

	flush := func() {
		if p := strings.TrimSpace(string(buf)); p != "" {
			phrases = append(phrases, p)
		}
		buf = buf[:0]
		afterColon = false
		colonQuotePending = false
	}

	for i, r := range runes {
		buf = append(buf, r)

		switch {
		case isQuoteChar(r):
			if !inQuotes {
				before := strings.TrimSpace(string(buf[:len(buf)-1]))
				if colonQuotePending || strings.HasSuffix(before, ":") {
					afterColon = true
				}
				colonQuotePending = false
				inQuotes = true
				expectedClose = closingQuote[r]
			} else if r == expectedClose {
				inQuotes = false
				expectedClose = 0
				if afterColon {
					flush()
				}
			}

		case r == ':' && !inQuotes:
			// An opening quote reachable through whitespace alone marks
			// upcoming dialogue.
			for j := i + 1; j < len(runes) && j <= i+colonLookahead; j++ {
				if isQuoteChar(runes[j]) {
					colonQuotePending = true
					break
				}
				if runes[j] != ' ' {
					break
				}
			}

		case !inQuotes && isSentenceEnd(runes, i):
			j := i + 1
			for j < len(runes) && runes[j] == ' ' {
				j++
			}
			if j >= len(runes) || isUpperASCII(runes[j]) || isQuoteChar(runes[j]) {
				flush()
			}
		}
	}

	flush()
	return phrases
}

// isSentenceEnd reports whether the rune at position i ends a sentence: one
// of . ! ? followed by whitespace, a quote character, or end of text. A digit
// or lowercase continuation (3.14, Mr. smith) does not qualify.
func isSentenceEnd(runes []rune, i int) bool {
	if !isSentenceTerminator(runes[i]) {
		return false
	}
	if i == len(runes)-1 {
		return true
	}
	next := runes[i+1]
	return next == ' ' || isQuoteChar(next)
}
