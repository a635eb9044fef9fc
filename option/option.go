// Package option provides Option, an explicit "value or nothing" result.
//
// It is used instead of zero values and nil pointers wherever absence has to
// be distinguishable from a present zero value.
package option

import (
	"fmt"

	"go.ytsaurus.tech/library/go/ptr"
)

// Option holds either a value or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for nil pointer and Some of pointed value otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(ptr.Value(p))
}

// Get returns value and true, or zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool { return o.ok }

func (o Option[T]) IsNone() bool { return !o.ok }

// OrElse returns value or def if option is empty.
func (o Option[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// OrElseFunc is like OrElse, but calls fn only when option is empty.
func (o Option[T]) OrElseFunc(fn func() T) T {
	if !o.ok {
		return fn()
	}
	return o.value
}

// Ptr returns pointer to a copy of value or nil.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	return ptr.T(o.value)
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies fn to the value of o, if any.
func Map[T, M any](o Option[T], fn func(T) M) Option[M] {
	if !o.ok {
		return None[M]()
	}
	return Some(fn(o.value))
}
