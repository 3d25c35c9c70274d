package enumerable

import (
	"errors"
	"fmt"
)

// ErrEmptyOrMultipleResult is matched (via errors.Is) by every error returned
// when a sequence was expected to hold exactly one element.
var ErrEmptyOrMultipleResult = errors.New("sequence does not contain exactly one element")

// CardinalityError reports that an operation expecting exactly one element
// saw none or more than one.
type CardinalityError struct {
	// Op is the name of the failing operation (e.g. "PickRandom").
	Op string

	// Count is the number of elements seen before giving up. It is 0 for an
	// empty sequence and 2 when a second element was found; the rest of the
	// sequence is not read.
	Count int
}

// Error implements the error interface.
func (e *CardinalityError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("%s: sequence contains no elements", e.Op)
	}
	return fmt.Sprintf("%s: sequence contains more than one element", e.Op)
}

// Unwrap lets errors.Is match ErrEmptyOrMultipleResult.
func (e *CardinalityError) Unwrap() error {
	return ErrEmptyOrMultipleResult
}

// IsEmptyOrMultipleResult returns true if err (or anything it wraps) is a
// cardinality failure.
func IsEmptyOrMultipleResult(err error) bool {
	return errors.Is(err, ErrEmptyOrMultipleResult)
}
