package slices

import (
	"go.ytsaurus.tech/library/go/collection/seq"
)

// Reverse reverses given slice.
// It will alter original non-empty slice, consider copy it beforehand.
func Reverse[S ~[]E, E any](s S) S {
	_ = ReverseRange(s, 0, len(s))
	return s
}

// ReverseRange reverses [start, end) of s in place.
func ReverseRange[S ~[]E, E any](s S, start, end int) error {
	return seq.ReverseRange[E](seq.Array[E](s), start, end)
}
