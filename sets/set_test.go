package sets_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ytsaurus.tech/library/go/collection/seq"
	"go.ytsaurus.tech/library/go/collection/sets"
)

func sorted[T int | string](s sets.ReadOnly[T]) []T {
	return slices.Sorted(s.All())
}

func TestSet(t *testing.T) {
	s := sets.Of(3, 1, 3, 2)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(4))

	added, err := s.Add(4)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.Add(4)
	require.NoError(t, err)
	assert.False(t, added)

	removed, err := s.Remove(1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Remove(1)
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Equal(t, []int{2, 3, 4}, sorted[int](s))

	require.NoError(t, s.Clear())
	assert.Zero(t, s.Len())
}

func TestZeroSet(t *testing.T) {
	var s sets.Set[string]
	assert.False(t, s.Contains("a"))
	s.Insert("a", "b", "a")
	assert.Equal(t, []string{"a", "b"}, sorted[string](&s))
}

func TestCollect(t *testing.T) {
	s := sets.Collect(slices.Values([]string{"x", "y", "x"}))
	assert.Equal(t, []string{"x", "y"}, sorted[string](s))
}

func TestSetAlgebra(t *testing.T) {
	a := sets.Of(1, 2, 3, 4)
	b := sets.Of(3, 4, 5)

	testCases := []struct {
		name     string
		got      *sets.Set[int]
		expected []int
	}{
		{"union", sets.Union[int](a, b), []int{1, 2, 3, 4, 5}},
		{"union_none", sets.Union[int](), nil},
		{"intersection", sets.Intersection[int](a, b), []int{3, 4}},
		{"intersection_empty", sets.Intersection[int](a, sets.Empty[int]()), nil},
		{"difference", sets.Difference[int](a, b), []int{1, 2}},
		{"difference_reverse", sets.Difference[int](b, a), []int{5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sorted[int](tc.got))
		})
	}

	assert.Equal(t, []int{1, 2, 3, 4}, sorted[int](a))
}

func TestEqual(t *testing.T) {
	assert.True(t, sets.Equal[int](sets.Of(1, 2), sets.Of(2, 1)))
	assert.False(t, sets.Equal[int](sets.Of(1, 2), sets.Of(1, 3)))
	assert.False(t, sets.Equal[int](sets.Of(1), sets.Of(1, 3)))
	assert.True(t, sets.Equal[int](sets.Empty[int](), sets.Of[int]()))
}

func TestUnmodifiable(t *testing.T) {
	base := sets.Of("a", "b")
	view := sets.Unmodifiable[string](base)

	assert.Equal(t, 2, view.Len())
	assert.True(t, view.Contains("a"))

	_, err := view.Add("c")
	assert.ErrorIs(t, err, seq.ErrUnsupported)
	_, err = view.Remove("a")
	assert.ErrorIs(t, err, seq.ErrUnsupported)
	assert.ErrorIs(t, view.Clear(), seq.ErrUnsupported)
	assert.Equal(t, []string{"a", "b"}, sorted[string](base))

	_, _ = base.Add("c")
	assert.True(t, view.Contains("c"))

	assert.Same(t, view, sets.Unmodifiable[string](view))
}

func TestEmpty(t *testing.T) {
	e := sets.Empty[int]()
	assert.Zero(t, e.Len())
	assert.False(t, e.Contains(0))
	assert.Nil(t, slices.Collect(e.All()))

	_, err := e.Add(1)
	assert.ErrorIs(t, err, seq.ErrUnsupported)
	_, err = e.Remove(1)
	assert.ErrorIs(t, err, seq.ErrUnsupported)
	assert.ErrorIs(t, e.Clear(), seq.ErrUnsupported)

	assert.Equal(t, sets.Empty[int](), sets.Empty[int]())
}
