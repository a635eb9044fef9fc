package slices

// Flatten concatenates given slices.
func Flatten[S ~[]T, T any](s []S) []T {
	var n int
	for _, inner := range s {
		n += len(inner)
	}
	res := make([]T, 0, n)
	for _, inner := range s {
		res = append(res, inner...)
	}
	return res
}

// ExpandIndexed maps every element and its index to a slice and concatenates the results.
func ExpandIndexed[S ~[]T, T, M any](s S, fn func(int, T) []M) []M {
	var res []M
	for i, v := range s {
		res = append(res, fn(i, v)...)
	}
	return res
}
