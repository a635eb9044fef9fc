package slices

// Map applies given function to every value of slice
func Map[S ~[]T, T, M any](s S, fn func(T) M) []M {
	return MapIndexed(s, func(_ int, v T) M { return fn(v) })
}

// MapIndexed applies given function to every value of slice and its index
func MapIndexed[S ~[]T, T, M any](s S, fn func(int, T) M) []M {
	if s == nil {
		return []M(nil)
	}
	res := make([]M, len(s))
	for i, v := range s {
		res[i] = fn(i, v)
	}
	return res
}

// MapE applies given function to every value of slice and return slice or first error
func MapE[S ~[]T, T, M any](s S, fn func(T) (M, error)) ([]M, error) {
	if s == nil {
		return []M(nil), nil
	}
	res := make([]M, len(s))
	for i, v := range s {
		transformed, err := fn(v)
		if err != nil {
			return nil, err
		}
		res[i] = transformed
	}
	return res, nil
}

// Mutate is like Map, but it prohibits type changes and modifies original slice.
func Mutate[S ~[]T, T any](s S, fn func(T) T) S {
	for i, v := range s {
		s[i] = fn(v)
	}
	return s
}
