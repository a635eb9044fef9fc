package slices

import (
	"golang.org/x/exp/slices"
)

// LowerBound returns the first index at which value could be inserted
// keeping s sorted by cmp.
func LowerBound[S ~[]T, T any](s S, value T, cmp func(a, b T) int) int {
	i, _ := slices.BinarySearchFunc(s, value, cmp)
	return i
}

// BinarySearch returns index of an element equal to value in s sorted by cmp, or -1.
func BinarySearch[S ~[]T, T any](s S, value T, cmp func(a, b T) int) int {
	if i, found := slices.BinarySearchFunc(s, value, cmp); found {
		return i
	}
	return -1
}

// EqualUnordered reports whether a and b hold the same elements with the same multiplicity.
func EqualUnordered[S ~[]T, T comparable](a, b S) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[T]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		if counts[v] == 0 {
			return false
		}
		counts[v]--
	}
	return true
}

// ContainsAll checks if slice contains all given elements, order independent.
func ContainsAll[E comparable](slice, elements []E) bool {
	for _, v := range elements {
		if !slices.Contains(slice, v) {
			return false
		}
	}
	return true
}
