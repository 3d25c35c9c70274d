// Package enumerable provides small, stateless helpers over Go iterators.
//
// Every function takes the sequence as its first argument and never mutates
// it. The helpers fall into five groups:
//
//   - Random sampling: Shuffle, PickRandom, PickRandomN and their seeded
//     *From variants.
//   - Distinct by key: DistinctBy.
//   - Adjacent grouping: GroupAdjacentBy.
//   - Predicates: IsEmpty, IsEmptyFunc, IsNilOrEmpty, IsNilOrEmptyFunc.
//   - String joining: Join, JoinPairs, JoinKeyValues, JoinPair.
//
// NIL SEQUENCES:
//
// A nil iter.Seq is treated as an absent sequence. Functions returning a
// sequence yield nothing for it, the predicates report it as empty, and the
// Join family returns mo.None. Only PickRandom and Single report an error,
// because they promise exactly one element.
//
// LAZINESS:
//
// Returned sequences do no work until ranged over. They are restartable
// exactly when their source is: ranging twice over DistinctBy or
// GroupAdjacentBy re-reads the source, and ranging twice over Shuffle draws
// two independent permutations.
//
// The random helpers are not cryptographically strong shuffles, even though
// the default randomness comes from crypto/rand.
package enumerable
