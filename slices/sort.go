package slices

import (
	"cmp"
	"slices"

	"go.ytsaurus.tech/library/go/collection/seq"
)

// Sorted is like slices.Sort but returns sorted copy of given slice
func Sorted[S ~[]T, T cmp.Ordered](s S) S {
	return SortedFunc(s, cmp.Compare[T])
}

// SortedFunc returns copy of given slice sorted with cmp. The sort is not stable.
func SortedFunc[S ~[]T, T any](s S, cmp func(a, b T) int) S {
	s2 := slices.Clone(s)
	_ = seq.Sort(seq.Array[T](s2), cmp)
	return s2
}

// SortedBy returns copy of given slice sorted by sortKey.
func SortedBy[S ~[]T, T any, K cmp.Ordered](s S, sortKey func(T) K) S {
	s2 := slices.Clone(s)
	SortBy(s2, sortKey)
	return s2
}

// SortedByCompare returns copy of given slice sorted by sortKey using compare for keys.
func SortedByCompare[S ~[]T, T, K any](s S, sortKey func(T) K, compare func(a, b K) int) S {
	s2 := slices.Clone(s)
	SortByCompare(s2, sortKey, compare)
	return s2
}

// SortBy sorts a slice in place using given sortKey. The sort is not stable.
func SortBy[S ~[]T, T any, K cmp.Ordered](x S, sortKey func(T) K) {
	SortByCompare(x, sortKey, cmp.Compare[K])
}

// SortByCompare sorts a slice in place using given sortKey and compare for keys.
func SortByCompare[S ~[]T, T, K any](x S, sortKey func(T) K, compare func(a, b K) int) {
	_ = seq.SortRangeBy(seq.Array[T](x), 0, len(x), sortKey, compare)
}

// SortDescBy sorts a slice in place using given sortKey in descending order
func SortDescBy[S ~[]T, T any, K cmp.Ordered](x S, sortKey func(T) K) {
	SortByCompare(x, sortKey, func(a, b K) int { return cmp.Compare(b, a) })
}

// SortStableBy sorts a slice in place using given sortKey, uses stable sorting
func SortStableBy[S ~[]T, T any, K cmp.Ordered](x S, sortKey func(T) K) {
	slices.SortStableFunc(x, func(a, b T) int { return cmp.Compare(sortKey(a), sortKey(b)) })
}

// SortDescStableBy sorts a slice in place using given sortKey in descending order, uses stable sorting
func SortDescStableBy[S ~[]T, T any, K cmp.Ordered](x S, sortKey func(T) K) {
	slices.SortStableFunc(x, func(a, b T) int { return cmp.Compare(sortKey(b), sortKey(a)) })
}

// SortRange sorts [start, end) of x in place with cmp, see seq.SortRange.
func SortRange[S ~[]T, T any](x S, start, end int, cmp func(a, b T) int) error {
	return seq.SortRange(seq.Array[T](x), start, end, cmp)
}

// SortRangeBy sorts [start, end) of x in place by sortKey, see seq.SortRangeBy.
func SortRangeBy[S ~[]T, T any, K cmp.Ordered](x S, start, end int, sortKey func(T) K) error {
	return seq.SortRangeBy(seq.Array[T](x), start, end, sortKey, cmp.Compare[K])
}

// IsSorted reports whether x is sorted according to cmp.
func IsSorted[S ~[]T, T any](x S, cmp func(a, b T) int) bool {
	return slices.IsSortedFunc(x, cmp)
}

// IsSortedBy reports whether x is sorted by sortKey.
func IsSortedBy[S ~[]T, T any, K cmp.Ordered](x S, sortKey func(T) K) bool {
	return slices.IsSortedFunc(x, func(a, b T) int { return cmp.Compare(sortKey(a), sortKey(b)) })
}
