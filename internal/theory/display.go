package theory

import (
	"errors"
	"fmt"
	"strings"
)

// DisplayDelimiter separates the header from the note list in a display
// string. Staff, playback and keyboard consumers split on it.
const DisplayDelimiter = " is: "

const noteSeparator = ", "

// ErrMalformedDisplay is returned when a display string has no delimiter
// or no notes after it
var ErrMalformedDisplay = errors.New("malformed scale display")

// FormatDisplay renders "<root> <name> is: <n1>, <n2>, ..., <nk>"
func FormatDisplay(root, name string, notes []string) string {
	return root + " " + name + DisplayDelimiter + strings.Join(notes, noteSeparator)
}

// ParseDisplay splits a display string back into its header and notes.
// Prefer the structured notes where available; this exists for consumers
// that only receive the text.
func ParseDisplay(text string) (string, []string, error) {
	header, list, found := strings.Cut(text, DisplayDelimiter)
	if !found {
		return "", nil, fmt.Errorf("%w: missing %q in %q", ErrMalformedDisplay, DisplayDelimiter, text)
	}

	list = strings.TrimSpace(list)
	if list == "" {
		return "", nil, fmt.Errorf("%w: no notes in %q", ErrMalformedDisplay, text)
	}

	parts := strings.Split(list, ",")
	notes := make([]string, 0, len(parts))
	for _, p := range parts {
		n := strings.TrimSpace(p)
		if n == "" {
			return "", nil, fmt.Errorf("%w: empty note in %q", ErrMalformedDisplay, text)
		}
		notes = append(notes, n)
	}
	return strings.TrimSpace(header), notes, nil
}
