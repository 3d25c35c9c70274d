package enumerable

import (
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_IsPermutation(t *testing.T) {
	input := []int{5, 1, 4, 1, 5, 9, 2, 6}

	got := slices.Collect(Shuffle(slices.Values(input)))

	assert.Len(t, got, len(input))
	assert.ElementsMatch(t, input, got)
	assert.Equal(t, []int{5, 1, 4, 1, 5, 9, 2, 6}, input, "input must not be modified")
}

func TestShuffle_Empty(t *testing.T) {
	assert.Empty(t, slices.Collect(Shuffle(slices.Values([]string{}))))
	assert.Empty(t, slices.Collect(Shuffle[string](nil)))
}

func TestShuffleFrom_Deterministic(t *testing.T) {
	input := slices.Values([]string{"a", "b", "c", "d", "e", "f", "g"})

	first := slices.Collect(ShuffleFrom(input, seeded(42)))
	second := slices.Collect(ShuffleFrom(input, seeded(42)))

	assert.Equal(t, first, second, "same seed should give the same order")
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e", "f", "g"}, first)
}

func TestShuffle_ReshufflesPerRange(t *testing.T) {
	r := seeded(7)
	shuffled := ShuffleFrom(slices.Values([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}), r)

	// 10! orders; twenty identical draws in a row would mean the sequence
	// is being cached.
	first := slices.Collect(shuffled)
	differs := false
	for range 20 {
		if !slices.Equal(first, slices.Collect(shuffled)) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "each range should draw a new permutation")
}

func TestShuffle_ApproximatelyUniform(t *testing.T) {
	const rounds = 6000
	r := seeded(1)
	counts := make(map[string]int)

	for range rounds {
		order := slices.Collect(ShuffleFrom(slices.Values([]int{1, 2, 3}), r))
		counts[fmt.Sprint(order)]++
	}

	require.Len(t, counts, 6, "all 3! permutations should appear")
	for perm, n := range counts {
		assert.InDelta(t, rounds/6, n, 200, "permutation %s drawn %d times", perm, n)
	}
}

func TestShuffle_StopsEarly(t *testing.T) {
	var got []int
	for v := range Shuffle(slices.Values([]int{1, 2, 3, 4})) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)
}

func TestPickRandomN(t *testing.T) {
	input := []int{10, 20, 30, 40, 50}

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"one", 1, 1},
		{"some", 3, 3},
		{"all", 5, 5},
		{"more than available", 9, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(PickRandomN(slices.Values(input), tt.count))
			assert.Len(t, got, tt.want)
			assert.Subset(t, input, got)

			// Drawn without replacement.
			assert.Len(t, slices.Compact(slices.Sorted(slices.Values(got))), tt.want)
		})
	}
}

func TestPickRandomN_NilSource(t *testing.T) {
	assert.Empty(t, slices.Collect(PickRandomN[int](nil, 3)))
}

func TestPickRandomNFrom_Deterministic(t *testing.T) {
	input := slices.Values([]string{"x", "y", "z", "w"})

	a := slices.Collect(PickRandomNFrom(input, 2, seeded(3)))
	b := slices.Collect(PickRandomNFrom(input, 2, seeded(3)))

	assert.Equal(t, a, b)
	assert.Len(t, a, 2)
}

func TestPickRandom(t *testing.T) {
	input := []string{"red", "green", "blue"}

	got, err := PickRandom(slices.Values(input))
	require.NoError(t, err)
	assert.Contains(t, input, got)
}

func TestPickRandom_Single(t *testing.T) {
	got, err := PickRandom(slices.Values([]int{7}))
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestPickRandom_Empty(t *testing.T) {
	tests := []struct {
		name   string
		source iter.Seq[int]
	}{
		{"empty", slices.Values([]int{})},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PickRandom(tt.source)
			require.Error(t, err)
			assert.Zero(t, got)
			assert.ErrorIs(t, err, ErrEmptyOrMultipleResult)
			assert.True(t, IsEmptyOrMultipleResult(err))

			var cerr *CardinalityError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, "PickRandom", cerr.Op)
			assert.Equal(t, 0, cerr.Count)
		})
	}
}

func TestPickRandom_SinglePass(t *testing.T) {
	got, err := PickRandom(once(1, 2, 3))
	require.NoError(t, err)
	assert.Contains(t, []int{1, 2, 3}, got)
}

func TestPickRandom_CoversAllElements(t *testing.T) {
	r := seeded(99)
	seen := make(map[int]bool)
	for range 200 {
		v, err := PickRandomFrom(slices.Values([]int{1, 2, 3, 4}), r)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}
