package enumerable

import "iter"

// IsEmpty reports whether source yields no elements. It stops at the first
// element. A nil source is empty.
func IsEmpty[T any](source iter.Seq[T]) bool {
	if source == nil {
		return true
	}
	for range source {
		return false
	}
	return true
}

// IsEmptyFunc reports whether no element of source satisfies pred. It stops
// at the first match.
func IsEmptyFunc[T any](source iter.Seq[T], pred func(T) bool) bool {
	if source == nil {
		return true
	}
	for v := range source {
		if pred(v) {
			return false
		}
	}
	return true
}

// IsNilOrEmpty reports whether source is nil or empty. A nil source is never
// invoked.
func IsNilOrEmpty[T any](source iter.Seq[T]) bool {
	return source == nil || IsEmpty(source)
}

// IsNilOrEmptyFunc reports whether source is nil or has no element
// satisfying pred.
func IsNilOrEmptyFunc[T any](source iter.Seq[T], pred func(T) bool) bool {
	return source == nil || IsEmptyFunc(source, pred)
}
