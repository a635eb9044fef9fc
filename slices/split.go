package slices

// SplitBefore splits s into chunks, starting a new chunk before every
// element (except the first one) for which test returns true.
func SplitBefore[S ~[]T, T any](s S, test func(T) bool) []S {
	return SplitBeforeIndexed(s, func(_ int, v T) bool { return test(v) })
}

// SplitBeforeIndexed is like SplitBefore, but test also receives element index.
func SplitBeforeIndexed[S ~[]T, T any](s S, test func(int, T) bool) []S {
	return splitWhere(s, func(i int) bool { return test(i, s[i]) })
}

// SplitAfter splits s into chunks, ending a chunk after every element for which test returns true.
func SplitAfter[S ~[]T, T any](s S, test func(T) bool) []S {
	return SplitAfterIndexed(s, func(_ int, v T) bool { return test(v) })
}

// SplitAfterIndexed is like SplitAfter, but test also receives element index.
func SplitAfterIndexed[S ~[]T, T any](s S, test func(int, T) bool) []S {
	return splitWhere(s, func(i int) bool { return test(i-1, s[i-1]) })
}

// SplitBetween splits s into chunks between adjacent elements a and b for which test returns true.
func SplitBetween[S ~[]T, T any](s S, test func(a, b T) bool) []S {
	return SplitBetweenIndexed(s, func(_ int, a, b T) bool { return test(a, b) })
}

// SplitBetweenIndexed is like SplitBetween, but test also receives index of b.
func SplitBetweenIndexed[S ~[]T, T any](s S, test func(i int, a, b T) bool) []S {
	return splitWhere(s, func(i int) bool { return test(i, s[i-1], s[i]) })
}

// splitWhere cuts s before every index i in [1, len(s)) for which cut returns true.
func splitWhere[S ~[]T, T any](s S, cut func(i int) bool) []S {
	if len(s) == 0 {
		return nil
	}
	var res []S
	start := 0
	for i := 1; i < len(s); i++ {
		if cut(i) {
			res = append(res, s[start:i:i])
			start = i
		}
	}
	return append(res, s[start:])
}
