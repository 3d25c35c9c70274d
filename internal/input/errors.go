package input

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped when an input file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedFormat is wrapped when a pairs file has an unknown
	// extension.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidPairs is wrapped when a pairs file parses but is not a flat
	// mapping of strings.
	ErrInvalidPairs = errors.New("invalid pairs")
)

// LoadError describes a failure to read or parse an input file.
type LoadError struct {
	Path    string
	Line    int // 1-based; 0 when unknown
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	switch {
	case e.Line > 0 && e.Err != nil:
		return fmt.Sprintf("%s:%d: %s: %v", e.Path, e.Line, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
