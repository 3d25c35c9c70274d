package enumerable

import (
	"bytes"
	"io"
	"iter"
	"slices"

	"github.com/google/uuid"
)

// keyed pairs an element with the random key it is ordered by.
type keyed[T any] struct {
	key   uuid.UUID
	value T
}

// Shuffle returns source in a pseudo-random order. Every range over the
// result reads all of source and draws a new permutation.
func Shuffle[T any](source iter.Seq[T]) iter.Seq[T] {
	return ShuffleFrom(source, nil)
}

// ShuffleFrom is Shuffle with the randomness read from r. A nil r uses the
// default source of github.com/google/uuid (crypto/rand). A deterministic
// reader yields a deterministic order.
//
// Elements are ordered by a freshly generated version 4 UUID each. Only the
// 122 random bits differ between keys, so every permutation is equally
// likely up to key collisions.
func ShuffleFrom[T any](source iter.Seq[T], r io.Reader) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}

		var elems []keyed[T]
		for v := range source {
			elems = append(elems, keyed[T]{key: randomKey(r), value: v})
		}

		slices.SortFunc(elems, func(a, b keyed[T]) int {
			return bytes.Compare(a.key[:], b.key[:])
		})

		for _, e := range elems {
			if !yield(e.value) {
				return
			}
		}
	}
}

// randomKey panics if r fails, like the flow token generator does with
// uuid.Must; an iterator has no error path.
func randomKey(r io.Reader) uuid.UUID {
	if r == nil {
		return uuid.New()
	}
	return uuid.Must(uuid.NewRandomFromReader(r))
}

// PickRandomN returns up to count randomly chosen elements of source, drawn
// without replacement. If source has fewer than count elements, all of them
// are returned in shuffled order. A count <= 0 yields nothing.
func PickRandomN[T any](source iter.Seq[T], count int) iter.Seq[T] {
	return PickRandomNFrom(source, count, nil)
}

// PickRandomNFrom is PickRandomN with the randomness read from r.
func PickRandomNFrom[T any](source iter.Seq[T], count int, r io.Reader) iter.Seq[T] {
	return func(yield func(T) bool) {
		if count <= 0 {
			return
		}

		taken := 0
		for v := range ShuffleFrom(source, r) {
			if !yield(v) {
				return
			}
			taken++
			if taken == count {
				return
			}
		}
	}
}

// PickRandom returns one uniformly chosen element of source. It fails with a
// *CardinalityError (matching ErrEmptyOrMultipleResult) when source is nil or
// empty.
func PickRandom[T any](source iter.Seq[T]) (T, error) {
	return PickRandomFrom(source, nil)
}

// PickRandomFrom is PickRandom with the randomness read from r.
func PickRandomFrom[T any](source iter.Seq[T], r io.Reader) (T, error) {
	// Sampled in a single pass so one-shot sources (stdin lines) work.
	picked := slices.Collect(PickRandomNFrom(source, 1, r))
	if len(picked) != 1 {
		var zero T
		return zero, &CardinalityError{Op: "PickRandom", Count: len(picked)}
	}
	return picked[0], nil
}
