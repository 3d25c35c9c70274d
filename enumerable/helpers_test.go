package enumerable

import (
	"encoding/binary"
	"iter"
	"math/rand/v2"
)

// seeded returns a deterministic reader for the *From variants.
func seeded(seed uint64) *rand.ChaCha8 {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return rand.NewChaCha8(s)
}

// counting wraps values in a sequence that records how many elements were
// pulled from it.
func counting[T any](pulled *int, values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

// once returns a sequence that panics when ranged a second time.
func once[T any](values ...T) iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			panic("sequence ranged twice")
		}
		used = true
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
