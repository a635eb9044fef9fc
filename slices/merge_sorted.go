package slices

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// MergeSorted merges two sorted slices. Returns nil in case of a or b is not sorted
func MergeSorted[E constraints.Ordered](a, b []E) []E {
	return MergeSortedFunc(a, b, func(x, y E) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

// MergeSortedFunc merges two slices sorted by cmp. Elements of a go first among equal ones.
// Returns nil in case of a or b is nil or not sorted.
func MergeSortedFunc[E any](a, b []E, cmp func(x, y E) int) []E {
	if a == nil || b == nil || !slices.IsSortedFunc(a, cmp) || !slices.IsSortedFunc(b, cmp) {
		return nil
	}

	result := make([]E, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if cmp(a[i], b[j]) <= 0 {
			result = append(result, a[i])
			i++
		} else {
			result = append(result, b[j])
			j++
		}
	}
	result = append(result, a[i:]...)
	return append(result, b[j:]...)
}
