package seq

// SortRange sorts [start, end) of s in place according to cmp.
// Elements outside of the range are not touched.
//
// The sort is not stable: elements for which cmp returns 0 may be reordered.
// cmp must be a total pre-order; an inconsistent cmp leaves the range in
// an unspecified order but never panics.
//
// If s is a *View, sorting is delegated to the view.
func SortRange[T any](s Sequence[T], start, end int, cmp func(a, b T) int) error {
	if v, ok := s.(*View[T]); ok {
		return v.SortRange(start, end, cmp)
	}
	if err := checkRange(s.Len(), start, end); err != nil {
		return err
	}
	sorter[T]{s: s, cmp: cmp}.sort(start, end)
	return nil
}

// SortRangeBy sorts [start, end) of s in place comparing keys extracted by keyOf.
//
// keyOf is called for both operands of every comparison, keys are not cached.
func SortRangeBy[T, K any](s Sequence[T], start, end int, keyOf func(T) K, cmp func(a, b K) int) error {
	return SortRange(s, start, end, func(a, b T) int {
		return cmp(keyOf(a), keyOf(b))
	})
}

// Sort sorts the whole sequence.
func Sort[T any](s Sequence[T], cmp func(a, b T) int) error {
	return SortRange(s, 0, s.Len(), cmp)
}

// IsSortedRange reports whether [start, end) of s is non-decreasing under cmp.
func IsSortedRange[T any](s Sequence[T], start, end int, cmp func(a, b T) int) (bool, error) {
	if v, ok := s.(*View[T]); ok {
		if err := v.Err(); err != nil {
			return false, err
		}
		if err := checkRange(v.length, start, end); err != nil {
			return false, err
		}
		s, start, end = v.base, v.start+start, v.start+end
	}
	if err := checkRange(s.Len(), start, end); err != nil {
		return false, err
	}
	for i := start + 1; i < end; i++ {
		if cmp(s.At(i), s.At(i-1)) < 0 {
			return false, nil
		}
	}
	return true, nil
}
