package seq

import (
	"math/bits"
)

// insertionSortThreshold: ranges this size or smaller are insertion sorted.
const insertionSortThreshold = 16

// sorter sorts ranges of s in place using absolute indices.
type sorter[T any] struct {
	s   Sequence[T]
	cmp func(a, b T) int
}

func (x sorter[T]) less(i, j int) bool {
	return x.cmp(x.s.At(i), x.s.At(j)) < 0
}

func (x sorter[T]) swap(i, j int) {
	a, b := x.s.At(i), x.s.At(j)
	x.s.Put(i, b)
	x.s.Put(j, a)
}

// sort sorts [lo, hi).
func (x sorter[T]) sort(lo, hi int) {
	if hi-lo < 2 {
		return
	}
	x.introSort(lo, hi, 2*bits.Len(uint(hi-lo)))
}

func (x sorter[T]) introSort(lo, hi, depthLimit int) {
	for hi-lo > insertionSortThreshold {
		if depthLimit == 0 {
			x.heapSort(lo, hi)
			return
		}
		depthLimit--

		lt, gt := x.partition(lo, hi)
		x.introSort(lo, lt, depthLimit)
		x.introSort(gt+1, hi, depthLimit)

		// Equal pivots: everything between them equals both.
		if x.cmp(x.s.At(lt), x.s.At(gt)) == 0 {
			return
		}
		lo, hi = lt+1, gt
	}
	x.insertionSort(lo, hi)
}

// partition splits [lo, hi) around two pivots p <= q and returns their
// final positions lt < gt:
//
//	[lo, lt) < p, [lt+1, gt) within [p, q], [gt+1, hi) > q.
func (x sorter[T]) partition(lo, hi int) (lt, gt int) {
	last := hi - 1
	third := (hi - lo) / 3

	// Pivot candidates are taken at one and two thirds of the range, so that
	// already sorted and reversed input still splits evenly.
	x.swap(lo, lo+third)
	x.swap(last, last-third)
	if x.less(last, lo) {
		x.swap(lo, last)
	}
	p, q := x.s.At(lo), x.s.At(last)

	lt, gt = lo+1, last-1
	for k := lt; k <= gt; k++ {
		v := x.s.At(k)
		switch {
		case x.cmp(v, p) < 0:
			x.swap(k, lt)
			lt++
		case x.cmp(v, q) > 0:
			for k < gt && x.cmp(x.s.At(gt), q) > 0 {
				gt--
			}
			x.swap(k, gt)
			gt--
			if x.cmp(x.s.At(k), p) < 0 {
				x.swap(k, lt)
				lt++
			}
		}
	}
	lt--
	gt++
	x.swap(lo, lt)
	x.swap(last, gt)
	return lt, gt
}

func (x sorter[T]) insertionSort(lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		v := x.s.At(i)
		j := i
		for ; j > lo && x.cmp(v, x.s.At(j-1)) < 0; j-- {
			x.s.Put(j, x.s.At(j-1))
		}
		x.s.Put(j, v)
	}
}

// heapSort guarantees O(n log n) once recursion gets too deep.
func (x sorter[T]) heapSort(lo, hi int) {
	n := hi - lo
	for i := (n - 1) / 2; i >= 0; i-- {
		x.siftDown(lo, i, n)
	}
	for i := n - 1; i > 0; i-- {
		x.swap(lo, lo+i)
		x.siftDown(lo, 0, i)
	}
}

func (x sorter[T]) siftDown(first, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && x.less(first+child, first+child+1) {
			child++
		}
		if !x.less(first+root, first+child) {
			return
		}
		x.swap(first+root, first+child)
		root = child
	}
}
