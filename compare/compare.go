// Package compare provides comparators as first-class values.
//
// A Comparator returns a negative number when a sorts before b, a positive
// number when a sorts after b and zero when they are equivalent. It must be
// a total pre-order.
package compare

import (
	"cmp"
)

// Comparator compares two values of type T.
type Comparator[T any] func(a, b T) int

// Ordered returns comparator using natural order of T.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// By compares values by a key extracted with keyOf.
func By[T any, K cmp.Ordered](keyOf func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(keyOf(a), keyOf(b))
	}
}

// ByCompare compares values by a key extracted with keyOf using compare for keys.
func ByCompare[T, K any](keyOf func(T) K, compare func(a, b K) int) Comparator[T] {
	return func(a, b T) int {
		return compare(keyOf(a), keyOf(b))
	}
}

// Inverse returns comparator with reversed order.
func (c Comparator[T]) Inverse() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then returns comparator which uses next when c considers values equal.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}
