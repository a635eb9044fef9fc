package iters

import "iter"

// Chunk groups elements of seq into slices of size elements, the last one may be shorter.
// Non-positive size puts everything into a single chunk.
// Every chunk is a fresh slice.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var chunk []T
		for v := range seq {
			if chunk == nil && size > 0 {
				chunk = make([]T, 0, size)
			}
			chunk = append(chunk, v)
			if size > 0 && len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = nil
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// SplitBefore starts a new chunk before every element (except the first one)
// for which test returns true.
func SplitBefore[T any](seq iter.Seq[T], test func(T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var chunk []T
		for v := range seq {
			if len(chunk) > 0 && test(v) {
				if !yield(chunk) {
					return
				}
				chunk = nil
			}
			chunk = append(chunk, v)
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}
