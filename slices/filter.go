package slices

// Filter returns values for which fn returns true.
// It operates with a copy of given slice
func Filter[S ~[]T, T any](s S, fn func(T) bool) S {
	return FilterIndexed(s, func(_ int, v T) bool { return fn(v) })
}

// FilterIndexed is like Filter, but fn also receives element index.
func FilterIndexed[S ~[]T, T any](s S, fn func(int, T) bool) S {
	if len(s) == 0 {
		return s
	}
	result := make(S, 0, len(s))
	for i, v := range s {
		if fn(i, v) {
			result = append(result, v)
		}
	}
	return result
}

// FilterNot returns values for which fn returns false.
func FilterNot[S ~[]T, T any](s S, fn func(T) bool) S {
	return FilterIndexed(s, func(_ int, v T) bool { return !fn(v) })
}

// FilterNotIndexed returns values for which fn returns false.
func FilterNotIndexed[S ~[]T, T any](s S, fn func(int, T) bool) S {
	return FilterIndexed(s, func(i int, v T) bool { return !fn(i, v) })
}

// Reduce is like Filter, but modifies original slice.
func Reduce[S ~[]T, T any](s S, fn func(T) bool) S {
	var p int
	for _, v := range s {
		if fn(v) {
			s[p] = v
			p++
		}
	}
	clear(s[p:])
	return s[:p]
}
