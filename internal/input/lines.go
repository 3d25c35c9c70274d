package input

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"os"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// LineReader reads newline separated lines. It follows the bufio.Scanner
// contract: range over All once, then check Err.
type LineReader struct {
	scanner *bufio.Scanner
	lines   int
	err     error
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &LineReader{scanner: s}
}

// All returns the lines without their terminators ("\n" or "\r\n"). The
// sequence is single-pass: a second range yields nothing.
func (lr *LineReader) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for lr.scanner.Scan() {
			lr.lines++
			if !yield(lr.scanner.Text()) {
				return
			}
		}
		if err := lr.scanner.Err(); err != nil && lr.err == nil {
			lr.err = err
		}
	}
}

// Lines returns how many lines have been read so far.
func (lr *LineReader) Lines() int {
	return lr.lines
}

// Err returns the first read error, if any.
func (lr *LineReader) Err() error {
	return lr.err
}

// Open opens path for reading. An empty path or "-" selects stdin, which is
// never closed by the returned closer.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Path: path, Message: "input file", Err: ErrNotFound}
	}
	if err != nil {
		return nil, &LoadError{Path: path, Message: "opening input", Err: err}
	}
	return f, nil
}
