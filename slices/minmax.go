package slices

import (
	"cmp"

	"go.ytsaurus.tech/library/go/collection/option"
)

// Min returns the smallest element, None for empty slice.
func Min[S ~[]T, T cmp.Ordered](s S) option.Option[T] {
	return MinFunc(s, cmp.Compare[T])
}

// Max returns the largest element, None for empty slice.
func Max[S ~[]T, T cmp.Ordered](s S) option.Option[T] {
	return MaxFunc(s, cmp.Compare[T])
}

// MinFunc returns the first smallest element according to cmp.
func MinFunc[S ~[]T, T any](s S, cmp func(a, b T) int) option.Option[T] {
	return extremum(s, func(v, best T) bool { return cmp(v, best) < 0 })
}

// MaxFunc returns the first largest element according to cmp.
func MaxFunc[S ~[]T, T any](s S, cmp func(a, b T) int) option.Option[T] {
	return extremum(s, func(v, best T) bool { return cmp(v, best) > 0 })
}

// MinBy returns the first element with the smallest key.
func MinBy[S ~[]T, T any, K cmp.Ordered](s S, key func(T) K) option.Option[T] {
	return extremumBy(s, key, func(k, best K) bool { return cmp.Less(k, best) })
}

// MaxBy returns the first element with the largest key.
func MaxBy[S ~[]T, T any, K cmp.Ordered](s S, key func(T) K) option.Option[T] {
	return extremumBy(s, key, func(k, best K) bool { return cmp.Less(best, k) })
}

func extremum[S ~[]T, T any](s S, better func(v, best T) bool) option.Option[T] {
	if len(s) == 0 {
		return option.None[T]()
	}
	best := s[0]
	for _, v := range s[1:] {
		if better(v, best) {
			best = v
		}
	}
	return option.Some(best)
}

// extremumBy calls key once per element.
func extremumBy[S ~[]T, T any, K any](s S, key func(T) K, better func(k, best K) bool) option.Option[T] {
	if len(s) == 0 {
		return option.None[T]()
	}
	best, bestKey := s[0], key(s[0])
	for _, v := range s[1:] {
		if k := key(v); better(k, bestKey) {
			best, bestKey = v, k
		}
	}
	return option.Some(best)
}
