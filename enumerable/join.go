package enumerable

import (
	"iter"
	"strings"

	"github.com/samber/mo"
)

// DefaultDelimiter is the delimiter callers conventionally pass to Join,
// JoinPairs and JoinKeyValues.
const DefaultDelimiter = ", "

// Pair is a string key-value pair. An empty Key or Value is absent.
type Pair struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Join concatenates the strings of list with delimiter between them. Empty
// strings are kept. It returns mo.None when list is nil and mo.Some("") when
// list is empty.
func Join(list iter.Seq[string], delimiter string) mo.Option[string] {
	if list == nil {
		return mo.None[string]()
	}

	var b strings.Builder
	first := true
	for s := range list {
		if !first {
			b.WriteString(delimiter)
		}
		first = false
		b.WriteString(s)
	}
	return mo.Some(b.String())
}

// JoinPairs renders every pair with JoinPair(pair, keyValueDelimiter) and
// joins the results with delimiter. It returns mo.None when list is nil.
func JoinPairs(list iter.Seq[Pair], keyValueDelimiter, delimiter string) mo.Option[string] {
	if list == nil {
		return mo.None[string]()
	}

	return Join(func(yield func(string) bool) {
		for p := range list {
			if !yield(JoinPair(p, keyValueDelimiter)) {
				return
			}
		}
	}, delimiter)
}

// JoinKeyValues is JoinPairs over a key-value sequence such as maps.All.
func JoinKeyValues(list iter.Seq2[string, string], keyValueDelimiter, delimiter string) mo.Option[string] {
	if list == nil {
		return mo.None[string]()
	}

	return JoinPairs(func(yield func(Pair) bool) {
		for k, v := range list {
			if !yield(Pair{Key: k, Value: v}) {
				return
			}
		}
	}, keyValueDelimiter, delimiter)
}

// JoinPair joins the key and value of pair with delimiter, leaving out
// whichever of the two is empty.
func JoinPair(pair Pair, delimiter string) string {
	parts := make([]string, 0, 2)
	if pair.Key != "" {
		parts = append(parts, pair.Key)
	}
	if pair.Value != "" {
		parts = append(parts, pair.Value)
	}
	return strings.Join(parts, delimiter)
}
