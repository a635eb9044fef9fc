package slices

import "go.ytsaurus.tech/library/go/collection/option"

// FirstOrNone returns the first element.
func FirstOrNone[S ~[]T, T any](s S) option.Option[T] {
	return ElementAtOrNone(s, 0)
}

// LastOrNone returns the last element.
func LastOrNone[S ~[]T, T any](s S) option.Option[T] {
	return ElementAtOrNone(s, len(s)-1)
}

// SingleOrNone returns the only element, None if slice is empty or has more than one element.
func SingleOrNone[S ~[]T, T any](s S) option.Option[T] {
	if len(s) != 1 {
		return option.None[T]()
	}
	return option.Some(s[0])
}

// ElementAtOrNone returns element at index i, None if i is out of range.
func ElementAtOrNone[S ~[]T, T any](s S, i int) option.Option[T] {
	if i < 0 || i >= len(s) {
		return option.None[T]()
	}
	return option.Some(s[i])
}

// FirstWhereOrNone returns the first element satisfying test.
func FirstWhereOrNone[S ~[]T, T any](s S, test func(T) bool) option.Option[T] {
	for _, v := range s {
		if test(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

// LastWhereOrNone returns the last element satisfying test.
func LastWhereOrNone[S ~[]T, T any](s S, test func(T) bool) option.Option[T] {
	for i := len(s) - 1; i >= 0; i-- {
		if test(s[i]) {
			return option.Some(s[i])
		}
	}
	return option.None[T]()
}

// SingleWhereOrNone returns the only element satisfying test,
// None if there are no such elements or more than one.
func SingleWhereOrNone[S ~[]T, T any](s S, test func(T) bool) option.Option[T] {
	res := option.None[T]()
	for _, v := range s {
		if !test(v) {
			continue
		}
		if res.IsSome() {
			return option.None[T]()
		}
		res = option.Some(v)
	}
	return res
}
