package enumerable

import "iter"

// DistinctBy returns the first element of source for each distinct key, in
// the order the keys first appear. Keys are compared with ==.
//
// The seen-key set lives for one range over the result, so ranging again
// starts from scratch.
func DistinctBy[T any, K comparable](source iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}

		seen := make(map[K]struct{})
		for v := range source {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}

			if !yield(v) {
				return
			}
		}
	}
}
