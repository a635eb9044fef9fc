// Package sets provides a map-backed set, an unmodifiable view over it and
// per-type empty sets.
package sets

import (
	"iter"
	"maps"
)

// ReadOnly is the query side of a set.
type ReadOnly[T comparable] interface {
	Len() int
	Contains(v T) bool
	All() iter.Seq[T]
}

// Mutable is a set that may be changed. Implementations that are not
// modifiable return seq.ErrUnsupported from every method.
type Mutable[T comparable] interface {
	ReadOnly[T]
	// Add inserts v and reports whether it was absent.
	Add(v T) (bool, error)
	// Remove deletes v and reports whether it was present.
	Remove(v T) (bool, error)
	Clear() error
}

var (
	_ Mutable[int] = (*Set[int])(nil)
	_ Mutable[int] = (*View[int])(nil)
	_ Mutable[int] = empty[int]{}
)

// Set is a hash set. The zero value is an empty set ready to use.
type Set[T comparable] struct {
	m map[T]struct{}
}

// Of returns a set holding given values.
func Of[T comparable](values ...T) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.m[v] = struct{}{}
	}
	return s
}

// Collect builds a set from seq.
func Collect[T comparable](seq iter.Seq[T]) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{})}
	for v := range seq {
		s.m[v] = struct{}{}
	}
	return s
}

func (s *Set[T]) Len() int { return len(s.m) }

func (s *Set[T]) Contains(v T) bool {
	_, ok := s.m[v]
	return ok
}

// All iterates over the elements in unspecified order.
func (s *Set[T]) All() iter.Seq[T] {
	return maps.Keys(s.m)
}

// Add never fails.
func (s *Set[T]) Add(v T) (bool, error) {
	if s.Contains(v) {
		return false, nil
	}
	if s.m == nil {
		s.m = make(map[T]struct{})
	}
	s.m[v] = struct{}{}
	return true, nil
}

// Insert adds every value.
func (s *Set[T]) Insert(values ...T) {
	for _, v := range values {
		_, _ = s.Add(v)
	}
}

// Remove never fails.
func (s *Set[T]) Remove(v T) (bool, error) {
	if !s.Contains(v) {
		return false, nil
	}
	delete(s.m, v)
	return true, nil
}

func (s *Set[T]) Clear() error {
	clear(s.m)
	return nil
}

// Union returns a new set holding elements of every given set.
func Union[T comparable](sets ...ReadOnly[T]) *Set[T] {
	res := &Set[T]{m: make(map[T]struct{})}
	for _, s := range sets {
		for v := range s.All() {
			res.m[v] = struct{}{}
		}
	}
	return res
}

// Intersection returns a new set holding elements present in both a and b.
func Intersection[T comparable](a, b ReadOnly[T]) *Set[T] {
	if b.Len() < a.Len() {
		a, b = b, a
	}
	res := &Set[T]{m: make(map[T]struct{})}
	for v := range a.All() {
		if b.Contains(v) {
			res.m[v] = struct{}{}
		}
	}
	return res
}

// Difference returns a new set holding elements of a absent in b.
func Difference[T comparable](a, b ReadOnly[T]) *Set[T] {
	res := &Set[T]{m: make(map[T]struct{})}
	for v := range a.All() {
		if !b.Contains(v) {
			res.m[v] = struct{}{}
		}
	}
	return res
}

// Equal reports whether a and b hold the same elements.
func Equal[T comparable](a, b ReadOnly[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for v := range a.All() {
		if !b.Contains(v) {
			return false
		}
	}
	return true
}
