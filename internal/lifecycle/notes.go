package lifecycle

import (
	"fmt"
	"strings"
	"time"
)

const (
	NoteSeparator  = "\n\n"
	noteTimeLayout = "02/01/2006 15:04"
)

// AppendNote adds a timestamped entry to the notes blob. Blank text leaves the
// blob untouched.
func AppendNote(existing, text, author string, at time.Time) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return existing
	}

	entry := fmt.Sprintf("[%s - %s] %s", at.Format(noteTimeLayout), author, text)

	if existing == "" {
		return entry
	}

	return existing + NoteSeparator + entry
}

// SplitNotes returns the entries of a notes blob in insertion order.
func SplitNotes(blob string) []string {
	parts := strings.Split(blob, NoteSeparator)
	notes := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			notes = append(notes, p)
		}
	}

	return notes
}
