package enumerable

import "iter"

// GroupAdjacentBy splits source into runs of consecutive elements. An
// element joins the current run when pred(previous, current) is true, where
// previous is the element right before it (not the first element of the
// run); otherwise it starts a new run.
//
// Runs are emitted as soon as they are closed, in a single forward pass.
// Stopping early never reads further than needed to close the last run
// requested. Each run is a new slice that the caller may keep or modify.
func GroupAdjacentBy[T any](source iter.Seq[T], pred func(prev, cur T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if source == nil {
			return
		}

		var (
			run  []T
			prev T
		)
		for v := range source {
			switch {
			case run == nil:
				run = []T{v}
			case pred(prev, v):
				run = append(run, v)
			default:
				if !yield(run) {
					return
				}
				run = []T{v}
			}
			prev = v
		}

		if run != nil {
			yield(run)
		}
	}
}
