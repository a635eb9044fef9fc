package slices

// ForEachIndexed calls fn for every element and its index.
func ForEachIndexed[S ~[]T, T any](s S, fn func(int, T)) {
	for i, v := range s {
		fn(i, v)
	}
}

// ForEachWhile calls fn for every element until fn returns false.
func ForEachWhile[S ~[]T, T any](s S, fn func(T) bool) {
	for _, v := range s {
		if !fn(v) {
			return
		}
	}
}

// ForEachIndexedWhile calls fn for every element and its index until fn returns false.
func ForEachIndexedWhile[S ~[]T, T any](s S, fn func(int, T) bool) {
	for i, v := range s {
		if !fn(i, v) {
			return
		}
	}
}
