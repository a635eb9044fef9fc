package slices

import "go.ytsaurus.tech/library/go/collection/option"

// FoldIndexed combines elements into a single value starting with initial.
func FoldIndexed[S ~[]T, T, R any](s S, initial R, fn func(i int, acc R, v T) R) R {
	acc := initial
	for i, v := range s {
		acc = fn(i, acc, v)
	}
	return acc
}

// ReduceIndexed combines elements using the first one as initial value.
// Empty slice gives None.
func ReduceIndexed[S ~[]T, T any](s S, fn func(i int, acc T, v T) T) option.Option[T] {
	if len(s) == 0 {
		return option.None[T]()
	}
	acc := s[0]
	for i := 1; i < len(s); i++ {
		acc = fn(i, acc, s[i])
	}
	return option.Some(acc)
}
