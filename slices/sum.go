package slices

import (
	"golang.org/x/exp/constraints"

	"go.ytsaurus.tech/library/go/collection/option"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Sum sums up slice values.
func Sum[S ~[]N, N Number](s S) N {
	var sum N
	for _, v := range s {
		sum += v
	}
	return sum
}

// SumTransform transforms given slice values to Number and sums them up
func SumTransform[S ~[]T, T any, N Number](s S, fn func(T) N) N {
	if len(s) == 0 || fn == nil {
		return 0
	}

	var sum N
	for _, v := range s {
		sum += fn(v)
	}
	return sum
}

// Average returns arithmetic mean of slice values, None for empty slice.
func Average[S ~[]N, N Number](s S) option.Option[float64] {
	if len(s) == 0 {
		return option.None[float64]()
	}
	// Running mean avoids overflow of integer sums.
	var mean float64
	for i, v := range s {
		mean += (float64(v) - mean) / float64(i+1)
	}
	return option.Some(mean)
}
