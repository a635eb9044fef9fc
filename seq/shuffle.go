package seq

import (
	"math/rand"
)

// ShuffleRange shuffles [start, end) of s in place with Fisher-Yates.
// A nil src uses the global pseudo-random source.
//
// If s is a *View, shuffling is delegated to the view.
func ShuffleRange[T any](s Sequence[T], start, end int, src rand.Source) error {
	if v, ok := s.(*View[T]); ok {
		return v.ShuffleRange(start, end, src)
	}
	if err := checkRange(s.Len(), start, end); err != nil {
		return err
	}
	shuffleRange(s, start, end, src)
	return nil
}

func shuffleRange[T any](s Sequence[T], start, end int, src rand.Source) {
	intn := rand.Intn
	if src != nil {
		intn = rand.New(src).Intn
	}
	x := sorter[T]{s: s}
	for n := end - start; n > 1; n-- {
		x.swap(start+n-1, start+intn(n))
	}
}

// ReverseRange reverses [start, end) of s in place.
//
// If s is a *View, reversing is delegated to the view.
func ReverseRange[T any](s Sequence[T], start, end int) error {
	if v, ok := s.(*View[T]); ok {
		return v.ReverseRange(start, end)
	}
	if err := checkRange(s.Len(), start, end); err != nil {
		return err
	}
	reverseRange(s, start, end)
	return nil
}

func reverseRange[T any](s Sequence[T], start, end int) {
	x := sorter[T]{s: s}
	for i, j := start, end-1; i < j; i, j = i+1, j-1 {
		x.swap(i, j)
	}
}

// Swap exchanges elements at indices i and j.
func Swap[T any](s Sequence[T], i, j int) error {
	if v, ok := s.(*View[T]); ok {
		return v.Swap(i, j)
	}
	if err := checkIndex(s.Len(), i); err != nil {
		return err
	}
	if err := checkIndex(s.Len(), j); err != nil {
		return err
	}
	sorter[T]{s: s}.swap(i, j)
	return nil
}
