package input

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// KeyOptions selects which part of a line identifies it.
type KeyOptions struct {
	// Field is the 1-based field to compare; 0 compares the whole line.
	Field int

	// Separator splits a line into fields. Empty splits on runs of
	// whitespace.
	Separator string

	// IgnoreCase compares case-folded keys.
	IgnoreCase bool

	// Normalize compares keys in Unicode NFC form, so precomposed and
	// decomposed spellings match.
	Normalize bool
}

// NewKeyFunc returns the key function described by opts. A line without the
// requested field has the empty key.
func NewKeyFunc(opts KeyOptions) func(string) string {
	var folder cases.Caser
	if opts.IgnoreCase {
		folder = cases.Fold()
	}

	return func(line string) string {
		key := line
		if opts.Field > 0 {
			key = field(line, opts.Separator, opts.Field)
		}
		if opts.IgnoreCase {
			key = folder.String(key)
		}
		if opts.Normalize {
			key = norm.NFC.String(key)
		}
		return key
	}
}

func field(line, sep string, n int) string {
	var parts []string
	if sep == "" {
		parts = strings.Fields(line)
	} else {
		parts = strings.Split(line, sep)
	}
	if n > len(parts) {
		return ""
	}
	return parts[n-1]
}
