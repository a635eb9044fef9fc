package compare

import (
	"cmp"
)

type selfComparer[T any] interface {
	Compare(other T) int
}

// Natural returns comparator for types having a natural order: builtin
// integer, float and string types, and types with a Compare(T) int method
// such as time.Time.
//
// Named types derived from builtin ones are not recognized, use Ordered for them.
func Natural[T any]() (Comparator[T], bool) {
	var zero T
	switch any(zero).(type) {
	case int:
		return as[T, int](), true
	case int8:
		return as[T, int8](), true
	case int16:
		return as[T, int16](), true
	case int32:
		return as[T, int32](), true
	case int64:
		return as[T, int64](), true
	case uint:
		return as[T, uint](), true
	case uint8:
		return as[T, uint8](), true
	case uint16:
		return as[T, uint16](), true
	case uint32:
		return as[T, uint32](), true
	case uint64:
		return as[T, uint64](), true
	case uintptr:
		return as[T, uintptr](), true
	case float32:
		return as[T, float32](), true
	case float64:
		return as[T, float64](), true
	case string:
		return as[T, string](), true
	case selfComparer[T]:
		return func(a, b T) int {
			return any(a).(selfComparer[T]).Compare(b)
		}, true
	}
	return nil, false
}

func as[T any, O cmp.Ordered]() Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(any(a).(O), any(b).(O))
	}
}
