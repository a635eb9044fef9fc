package seq_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ytsaurus.tech/library/go/collection/seq"
)

func TestSortRange(t *testing.T) {
	s := seq.Array[int]{5, 3, 1, 4, 2}
	require.NoError(t, seq.SortRange(s, 1, 4, func(a, b int) int { return a - b }))
	assert.Equal(t, seq.Array[int]{5, 1, 3, 4, 2}, s)
}

func TestSortRangeInvalid(t *testing.T) {
	for _, tc := range []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 2},
		{"start after end", 3, 2},
		{"end after length", 0, 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := seq.Array[int]{5, 3, 1, 4, 2}
			err := seq.SortRange(s, tc.start, tc.end, cmp.Compare[int])
			assert.ErrorIs(t, err, seq.ErrInvalidRange)
			assert.Equal(t, seq.Array[int]{5, 3, 1, 4, 2}, s)
		})
	}
}

func TestSortRangeEmpty(t *testing.T) {
	s := seq.Array[int]{2, 1}
	require.NoError(t, seq.SortRange(s, 1, 1, cmp.Compare[int]))
	require.NoError(t, seq.SortRange(s, 2, 2, cmp.Compare[int]))
	require.NoError(t, seq.Sort(seq.Array[int]{}, cmp.Compare[int]))
	assert.Equal(t, seq.Array[int]{2, 1}, s)
}

func TestSortRangeRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 2, 3, 10, 16, 17, 18, 31, 64, 100, 257, 1000, 4096} {
		for range 10 {
			orig := make([]int, n)
			for i := range orig {
				orig[i] = r.Intn(n) - n/2
			}
			start := r.Intn(n + 1)
			end := start + r.Intn(n-start+1)

			s := seq.Array[int](slices.Clone(orig))
			require.NoError(t, seq.SortRange(s, start, end, cmp.Compare[int]))

			expected := slices.Clone(orig)
			slices.Sort(expected[start:end])
			require.Equal(t, expected, []int(s), "n=%d range=[%d, %d)", n, start, end)
		}
	}
}

func TestSortRangePatterns(t *testing.T) {
	const n = 5000
	patterns := map[string]func(i int) int{
		"sorted":       func(i int) int { return i },
		"reversed":     func(i int) int { return n - i },
		"all equal":    func(i int) int { return 7 },
		"few distinct": func(i int) int { return i % 3 },
		"organ pipe": func(i int) int {
			if i < n/2 {
				return i
			}
			return n - i
		},
		"sawtooth": func(i int) int { return i % 100 },
	}
	for name, gen := range patterns {
		t.Run(name, func(t *testing.T) {
			s := make(seq.Array[int], n)
			for i := range s {
				s[i] = gen(i)
			}
			expected := slices.Clone([]int(s))
			slices.Sort(expected)

			require.NoError(t, seq.Sort(s, cmp.Compare[int]))
			assert.Equal(t, expected, []int(s))
		})
	}
}

func TestSortRangeIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	s := make(seq.Array[int], 300)
	for i := range s {
		s[i] = r.Intn(50)
	}
	require.NoError(t, seq.SortRange(s, 10, 290, cmp.Compare[int]))
	once := slices.Clone(s)
	require.NoError(t, seq.SortRange(s, 10, 290, cmp.Compare[int]))
	assert.Equal(t, once, s)
}

func TestSortRangeDescending(t *testing.T) {
	s := seq.Array[string]{"b", "d", "a", "c"}
	require.NoError(t, seq.Sort(s, func(a, b string) int { return cmp.Compare(b, a) }))
	assert.Equal(t, seq.Array[string]{"d", "c", "b", "a"}, s)
}

type record struct {
	key   int
	label string
	tags  []string
}

func TestSortRangeByIsNotStable(t *testing.T) {
	// Records are not comparable, only their keys are. The sort may reorder
	// records with equal keys, so only the key order and the multiset of
	// records are checked.
	r := rand.New(rand.NewSource(3))
	orig := make([]record, 200)
	for i := range orig {
		orig[i] = record{key: r.Intn(5), label: string(rune('a' + i%26)), tags: []string{"x"}}
	}
	s := seq.Array[record](slices.Clone(orig))
	require.NoError(t, seq.SortRangeBy(s, 0, len(s), func(v record) int { return v.key }, cmp.Compare[int]))

	ok, err := seq.IsSortedRange(s, 0, len(s), func(a, b record) int { return cmp.Compare(a.key, b.key) })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.ElementsMatch(t, orig, []record(s))
}

func TestSortRangeByKeepsOutside(t *testing.T) {
	s := seq.Array[string]{"zzz", "ccc", "a", "bb", "dddd", "e"}
	require.NoError(t, seq.SortRangeBy(s, 1, 5, func(v string) int { return len(v) }, cmp.Compare[int]))
	assert.Equal(t, seq.Array[string]{"zzz", "a", "bb", "ccc", "dddd", "e"}, s)
}

func TestSortRangeInconsistentComparator(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	orig := make([]int, 1000)
	for i := range orig {
		orig[i] = i
	}
	s := seq.Array[int](slices.Clone(orig))
	assert.NotPanics(t, func() {
		_ = seq.Sort(s, func(a, b int) int { return r.Intn(3) - 1 })
	})
	assert.ElementsMatch(t, orig, []int(s))
}

func TestSortList(t *testing.T) {
	l := seq.NewList(3, 1, 2)
	require.NoError(t, seq.Sort[int](l, cmp.Compare[int]))
	assert.Equal(t, []int{1, 2, 3}, l.Values())
}

func TestIsSortedRange(t *testing.T) {
	s := seq.Array[int]{3, 1, 2, 4, 0}
	ok, err := seq.IsSortedRange(s, 1, 4, cmp.Compare[int])
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = seq.IsSortedRange(s, 0, 4, cmp.Compare[int])
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = seq.IsSortedRange(s, 4, 6, cmp.Compare[int])
	assert.ErrorIs(t, err, seq.ErrInvalidRange)
}
