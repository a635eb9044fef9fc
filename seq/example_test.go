package seq_test

import (
	"cmp"
	"errors"
	"fmt"

	"go.ytsaurus.tech/library/go/collection/seq"
)

func ExampleSortRange() {
	s := seq.Array[int]{5, 3, 1, 4, 2}
	if err := seq.SortRange(s, 1, 4, cmp.Compare[int]); err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: [5 1 3 4 2]
}

func ExampleSlice() {
	backing := seq.NewList(10, 20, 30, 40)

	v, err := seq.Slice[int](backing, 1, 3)
	if err != nil {
		panic(err)
	}
	_ = v.Set(1, 99)
	fmt.Println(v.Len(), backing.Values())

	_, _ = backing.RemoveAt(0)
	_, err = v.Get(0)
	fmt.Println(errors.Is(err, seq.ErrStaleView))
	// Output:
	// 2 [10 20 99 40]
	// true
}
