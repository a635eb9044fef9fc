package sets

import (
	"iter"

	"go.ytsaurus.tech/library/go/collection/seq"
	"go.ytsaurus.tech/library/go/core/xerrors"
)

// View is an unmodifiable window over another set. Changes of the
// underlying set are visible through the view.
type View[T comparable] struct {
	base ReadOnly[T]
}

// Unmodifiable wraps s so that every mutator fails with seq.ErrUnsupported.
func Unmodifiable[T comparable](s ReadOnly[T]) *View[T] {
	if v, ok := s.(*View[T]); ok {
		return v
	}
	return &View[T]{base: s}
}

func (v *View[T]) Len() int { return v.base.Len() }

func (v *View[T]) Contains(e T) bool { return v.base.Contains(e) }

func (v *View[T]) All() iter.Seq[T] { return v.base.All() }

func (v *View[T]) Add(T) (bool, error) { return false, errUnmodifiable("add") }

func (v *View[T]) Remove(T) (bool, error) { return false, errUnmodifiable("remove") }

func (v *View[T]) Clear() error { return errUnmodifiable("clear") }

// empty is a zero-size set, all of its values are equal.
type empty[T comparable] struct{}

// Empty returns the unmodifiable empty set of T.
func Empty[T comparable]() Mutable[T] {
	return empty[T]{}
}

func (empty[T]) Len() int { return 0 }

func (empty[T]) Contains(T) bool { return false }

func (empty[T]) All() iter.Seq[T] { return func(func(T) bool) {} }

func (empty[T]) Add(T) (bool, error) { return false, errUnmodifiable("add") }

func (empty[T]) Remove(T) (bool, error) { return false, errUnmodifiable("remove") }

func (empty[T]) Clear() error { return errUnmodifiable("clear") }

func errUnmodifiable(op string) error {
	return seq.ErrUnsupported.Wrap(xerrors.Errorf("%s on an unmodifiable set", op))
}
