package iters

import "iter"

// Indexed pairs every element of seq with its position.
func Indexed[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// MapIndexed lazily maps every element and its position.
func MapIndexed[T, M any](seq iter.Seq[T], fn func(int, T) M) iter.Seq[M] {
	return func(yield func(M) bool) {
		for i, v := range Indexed(seq) {
			if !yield(fn(i, v)) {
				return
			}
		}
	}
}

// FilterIndexed lazily keeps elements for which fn returns true.
func FilterIndexed[T any](seq iter.Seq[T], fn func(int, T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, v := range Indexed(seq) {
			if fn(i, v) && !yield(v) {
				return
			}
		}
	}
}

// Flatten concatenates the slices produced by seq.
func Flatten[S ~[]T, T any](seq iter.Seq[S]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range seq {
			for _, v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}
