package seq

import (
	"slices"

	"go.ytsaurus.tech/library/go/core/xerrors"
)

// List is a growable Sequence backed by a Go slice.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	items []T
}

// NewList returns a list holding a copy of values.
func NewList[T any](values ...T) *List[T] {
	return &List[T]{items: slices.Clone(values)}
}

func (l *List[T]) Len() int { return len(l.items) }

func (l *List[T]) At(i int) T {
	v, err := l.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}

func (l *List[T]) Put(i int, v T) {
	if err := l.Set(i, v); err != nil {
		panic(err)
	}
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	if err := checkIndex(len(l.items), i); err != nil {
		var zero T
		return zero, err
	}
	return l.items[i], nil
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v T) error {
	if err := checkIndex(len(l.items), i); err != nil {
		return err
	}
	l.items[i] = v
	return nil
}

func (l *List[T]) Append(values ...T) error {
	l.items = append(l.items, values...)
	return nil
}

func (l *List[T]) Insert(i int, values ...T) error {
	if i < 0 || i > len(l.items) {
		return ErrIndexOutOfRange.Wrap(xerrors.Errorf("insert at %d, length %d", i, len(l.items)))
	}
	l.items = slices.Insert(l.items, i, values...)
	return nil
}

func (l *List[T]) RemoveAt(i int) (T, error) {
	v, err := l.Get(i)
	if err != nil {
		return v, err
	}
	l.items = slices.Delete(l.items, i, i+1)
	return v, nil
}

func (l *List[T]) RemoveRange(start, end int) error {
	if err := checkRange(len(l.items), start, end); err != nil {
		return err
	}
	l.items = slices.Delete(l.items, start, end)
	return nil
}

func (l *List[T]) ReplaceRange(start, end int, values ...T) error {
	if err := checkRange(len(l.items), start, end); err != nil {
		return err
	}
	l.items = slices.Replace(l.items, start, end, values...)
	return nil
}

func (l *List[T]) Clear() error {
	clear(l.items)
	l.items = l.items[:0]
	return nil
}

func (l *List[T]) SetLen(n int) error {
	if n < 0 {
		return ErrInvalidRange.Wrap(xerrors.Errorf("negative length %d", n))
	}
	if n <= len(l.items) {
		clear(l.items[n:])
		l.items = l.items[:n]
		return nil
	}
	old := len(l.items)
	l.items = slices.Grow(l.items, n-old)[:n]
	clear(l.items[old:])
	return nil
}

// Values returns a copy of list elements.
func (l *List[T]) Values() []T {
	return slices.Clone(l.items)
}
