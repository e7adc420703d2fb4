package phrase

// Recognized quote characters: the two ASCII quotes plus the curly variants.
var quoteChars = map[rune]struct{}{
	'"': {}, '\'': {},
	'“': {}, '”': {}, // “ ”
	'‘': {}, '’': {}, // ‘ ’
}

// closingQuote maps an opening quote to the character that closes its span.
// The ASCII quotes close themselves; curly quotes must match their partner.
// A curly closing quote used as an opener has no entry, so the span it opens
// never closes.
var closingQuote = map[rune]rune{
	'"':      '"',
	'\'':     '\'',
	'“': '”', // “ → ”
	'‘': '’', // ‘ → ’
}

// isQuoteChar checks whether a rune is a recognized quote character.
func isQuoteChar(r rune) bool {
	_, ok := quoteChars[r]
	return ok
}

// isSentenceTerminator checks whether a rune can end a sentence.
func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// isUpperASCII checks whether a rune is an uppercase ASCII letter.
func isUpperASCII(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
