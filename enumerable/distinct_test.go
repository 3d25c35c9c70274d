package enumerable

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinctBy(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		key   func(int) int
		want  []int
	}{
		{
			name:  "parity keeps first of each class",
			input: []int{1, 2, 3, 4},
			key:   func(x int) int { return x % 2 },
			want:  []int{1, 2},
		},
		{
			name:  "identity without duplicates is unchanged",
			input: []int{3, 1, 2},
			key:   func(x int) int { return x },
			want:  []int{3, 1, 2},
		},
		{
			name:  "identity drops later duplicates",
			input: []int{3, 1, 3, 2, 1},
			key:   func(x int) int { return x },
			want:  []int{3, 1, 2},
		},
		{
			name:  "constant key keeps only the first",
			input: []int{9, 8, 7},
			key:   func(int) int { return 0 },
			want:  []int{9},
		},
		{
			name:  "empty",
			input: []int{},
			key:   func(x int) int { return x },
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(DistinctBy(slices.Values(tt.input), tt.key))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistinctBy_StructKey(t *testing.T) {
	type user struct {
		Name  string
		Email string
	}
	users := []user{
		{"Ann", "ann@example.com"},
		{"Bob", "BOB@example.com"},
		{"Ann B.", "ANN@example.com"},
		{"Bobby", "bob@example.com"},
	}

	got := slices.Collect(DistinctBy(slices.Values(users), func(u user) string {
		return strings.ToLower(u.Email)
	}))

	assert.Equal(t, []user{users[0], users[1]}, got)
}

func TestDistinctBy_Nil(t *testing.T) {
	assert.Empty(t, slices.Collect(DistinctBy[int, int](nil, func(x int) int { return x })))
}

func TestDistinctBy_Restartable(t *testing.T) {
	distinct := DistinctBy(slices.Values([]string{"a", "b", "a"}), strings.ToUpper)

	assert.Equal(t, []string{"a", "b"}, slices.Collect(distinct))
	assert.Equal(t, []string{"a", "b"}, slices.Collect(distinct), "second range starts with an empty key set")
}

func TestDistinctBy_Lazy(t *testing.T) {
	pulled := 0
	for v := range DistinctBy(counting(&pulled, 1, 1, 2, 3, 4), func(x int) int { return x }) {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 3, pulled)
}
