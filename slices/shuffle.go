package slices

import (
	"math/rand"

	"go.ytsaurus.tech/library/go/collection/seq"
)

// Shuffle shuffles values in slice using given or pseudo-random source.
// It will alter original non-empty slice, consider copy it beforehand.
func Shuffle[S ~[]E, E any](a S, src rand.Source) S {
	_ = ShuffleRange(a, 0, len(a), src)
	return a
}

// Shuffled returns shuffled copy of given slice.
func Shuffled[S ~[]E, E any](a S, src rand.Source) S {
	a2 := make(S, len(a))
	copy(a2, a)
	return Shuffle(a2, src)
}

// ShuffleRange shuffles [start, end) of a in place, see seq.ShuffleRange.
func ShuffleRange[S ~[]E, E any](a S, start, end int, src rand.Source) error {
	return seq.ShuffleRange[E](seq.Array[E](a), start, end, src)
}

// Sample returns up to n distinct positions of a chosen at random, in random order.
func Sample[S ~[]E, E any](a S, n int, src rand.Source) S {
	n = max(0, min(n, len(a)))
	intn := rand.Intn
	if src != nil {
		intn = rand.New(src).Intn
	}

	// Partial Fisher-Yates over a copy of the input.
	pool := make(S, len(a))
	copy(pool, a)
	for i := range n {
		j := i + intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}
