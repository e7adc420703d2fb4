package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// WriteAll puts text on the system clipboard. Empty text is rejected so a
// degenerate transcript never clears the user's clipboard.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("nothing to copy")
	}
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard is usable in this environment.
func Available() bool {
	return !clipboard.Unsupported
}
