package seq

import (
	"math/rand"

	"go.ytsaurus.tech/library/go/collection/compare"
	"go.ytsaurus.tech/library/go/core/xerrors"
)

// View is a fixed-length window onto [start, start+Len()) of a backing sequence.
//
// Writes through a view are visible in the backing sequence and vice versa.
// Every call touching the backing sequence fails with ErrStaleView once the
// backing length differs from the length observed when the view was created.
type View[T any] struct {
	base        Sequence[T]
	start       int
	length      int
	initialSize int
}

// Slice returns a view of [start, end) of s.
//
// Slicing a view produces a view of the original backing sequence with
// composed offsets, so access cost does not depend on slicing depth.
func Slice[T any](s Sequence[T], start, end int) (*View[T], error) {
	if v, ok := s.(*View[T]); ok {
		return v.Slice(start, end)
	}
	n := s.Len()
	if err := checkRange(n, start, end); err != nil {
		return nil, err
	}
	return &View[T]{base: s, start: start, length: end - start, initialSize: n}, nil
}

// SliceFrom returns a view of [start, s.Len()) of s.
func SliceFrom[T any](s Sequence[T], start int) (*View[T], error) {
	return Slice(s, start, s.Len())
}

// Slice returns a view of [start, end) of v. The result shares the backing
// sequence and the length snapshot of v, it is not checked for staleness.
func (v *View[T]) Slice(start, end int) (*View[T], error) {
	if err := checkRange(v.length, start, end); err != nil {
		return nil, err
	}
	return &View[T]{
		base:        v.base,
		start:       v.start + start,
		length:      end - start,
		initialSize: v.initialSize,
	}, nil
}

// SliceFrom returns a view of [start, v.Len()) of v.
func (v *View[T]) SliceFrom(start int) (*View[T], error) {
	return v.Slice(start, v.length)
}

// Len returns the view length. It never changes.
func (v *View[T]) Len() int { return v.length }

// Err returns ErrStaleView if the backing sequence changed its length.
func (v *View[T]) Err() error {
	if n := v.base.Len(); n != v.initialSize {
		return ErrStaleView.Wrap(xerrors.Errorf("backing length changed from %d to %d", v.initialSize, n))
	}
	return nil
}

// Get returns the element at index i.
func (v *View[T]) Get(i int) (T, error) {
	if err := v.check(i); err != nil {
		var zero T
		return zero, err
	}
	return v.base.At(v.start + i), nil
}

// Set replaces the element at index i.
func (v *View[T]) Set(i int, value T) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.base.Put(v.start+i, value)
	return nil
}

// At is like Get, but panics with the error.
func (v *View[T]) At(i int) T {
	value, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return value
}

// Put is like Set, but panics with the error.
func (v *View[T]) Put(i int, value T) {
	if err := v.Set(i, value); err != nil {
		panic(err)
	}
}

func (v *View[T]) check(i int) error {
	if err := v.Err(); err != nil {
		return err
	}
	return checkIndex(v.length, i)
}

// checkRange validates liveness and [start, end) and translates the range
// into backing coordinates.
func (v *View[T]) checkRange(start, end int) (int, int, error) {
	if err := v.Err(); err != nil {
		return 0, 0, err
	}
	if err := checkRange(v.length, start, end); err != nil {
		return 0, 0, err
	}
	return v.start + start, v.start + end, nil
}

// SetRange copies values into [start, end). values must hold at least end-start elements.
func (v *View[T]) SetRange(start, end int, values []T) error {
	from, to, err := v.checkRange(start, end)
	if err != nil {
		return err
	}
	if len(values) < end-start {
		return ErrInvalidRange.Wrap(xerrors.Errorf("too few elements: %d, need %d", len(values), end-start))
	}
	for i := from; i < to; i++ {
		v.base.Put(i, values[i-from])
	}
	return nil
}

// Values returns a copy of view elements.
func (v *View[T]) Values() ([]T, error) {
	if err := v.Err(); err != nil {
		return nil, err
	}
	res := make([]T, v.length)
	for i := range res {
		res[i] = v.base.At(v.start + i)
	}
	return res, nil
}

// Sort sorts the view in place. A nil cmp sorts in natural order of T,
// see compare.Natural.
func (v *View[T]) Sort(cmp func(a, b T) int) error {
	if cmp == nil {
		natural, ok := compare.Natural[T]()
		if !ok {
			return ErrUnsupported.Wrap(xerrors.Errorf("%T has no natural order", *new(T)))
		}
		cmp = natural
	}
	return v.SortRange(0, v.length, cmp)
}

// SortRange sorts [start, end) of the view in place.
func (v *View[T]) SortRange(start, end int, cmp func(a, b T) int) error {
	from, to, err := v.checkRange(start, end)
	if err != nil {
		return err
	}
	sorter[T]{s: v.base, cmp: cmp}.sort(from, to)
	return nil
}

// Shuffle shuffles the view in place, a nil src uses the global source.
func (v *View[T]) Shuffle(src rand.Source) error {
	return v.ShuffleRange(0, v.length, src)
}

// ShuffleRange shuffles [start, end) of the view in place.
func (v *View[T]) ShuffleRange(start, end int, src rand.Source) error {
	from, to, err := v.checkRange(start, end)
	if err != nil {
		return err
	}
	shuffleRange(v.base, from, to, src)
	return nil
}

// Reverse reverses the view in place.
func (v *View[T]) Reverse() error {
	return v.ReverseRange(0, v.length)
}

// ReverseRange reverses [start, end) of the view in place.
func (v *View[T]) ReverseRange(start, end int) error {
	from, to, err := v.checkRange(start, end)
	if err != nil {
		return err
	}
	reverseRange(v.base, from, to)
	return nil
}

// Swap exchanges elements at indices i and j.
func (v *View[T]) Swap(i, j int) error {
	if err := v.check(i); err != nil {
		return err
	}
	if err := checkIndex(v.length, j); err != nil {
		return err
	}
	sorter[T]{s: v.base}.swap(v.start+i, v.start+j)
	return nil
}

func errFixedLength(op string) error {
	return ErrUnsupported.Wrap(xerrors.Errorf("%s on a fixed-length view", op))
}

func (v *View[T]) Append(...T) error { return errFixedLength("append") }

func (v *View[T]) Insert(int, ...T) error { return errFixedLength("insert") }

func (v *View[T]) RemoveAt(int) (T, error) {
	var zero T
	return zero, errFixedLength("remove")
}

func (v *View[T]) RemoveRange(int, int) error { return errFixedLength("remove range") }

func (v *View[T]) ReplaceRange(int, int, ...T) error { return errFixedLength("replace range") }

func (v *View[T]) Clear() error { return errFixedLength("clear") }

func (v *View[T]) SetLen(int) error { return errFixedLength("set length") }
