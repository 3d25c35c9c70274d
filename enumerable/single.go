package enumerable

import "iter"

// Single returns the only element of source. It fails with a
// *CardinalityError when source is nil, empty, or yields a second element;
// in the last case it stops reading right after the second element.
func Single[T any](source iter.Seq[T]) (T, error) {
	return single("Single", source)
}

func single[T any](op string, source iter.Seq[T]) (T, error) {
	var (
		result T
		count  int
	)
	if source == nil {
		return result, &CardinalityError{Op: op}
	}

	for v := range source {
		count++
		if count > 1 {
			var zero T
			return zero, &CardinalityError{Op: op, Count: count}
		}
		result = v
	}

	if count == 0 {
		return result, &CardinalityError{Op: op}
	}
	return result, nil
}
