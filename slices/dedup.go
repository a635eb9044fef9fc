package slices

import (
	"cmp"
	"slices"
)

// Dedup removes duplicate values from slice and sorts it.
// It will alter original non-empty slice, consider copy it beforehand.
func Dedup[S ~[]E, E cmp.Ordered](s S) S {
	return DedupFunc(s, cmp.Compare[E])
}

// DedupFunc is like Dedup, but values are ordered and compared with cmp.
func DedupFunc[S ~[]E, E any](s S, cmp func(a, b E) int) S {
	if len(s) < 2 {
		return s
	}
	_ = SortRange(s, 0, len(s), cmp)
	return slices.CompactFunc(s, func(a, b E) bool { return cmp(a, b) == 0 })
}

// DedupBools removes duplicate values from bool slice.
// It will alter original non-empty slice, consider copy it beforehand.
func DedupBools(a []bool) []bool {
	return DedupFunc(a, func(x, y bool) int {
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	})
}
