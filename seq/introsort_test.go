package seq

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomArray(r *rand.Rand, n, limit int) Array[int] {
	s := make(Array[int], n)
	for i := range s {
		s[i] = r.Intn(limit)
	}
	return s
}

func TestPartition(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for range 100 {
		s := randomArray(r, 100, 30)
		x := sorter[int]{s: s, cmp: cmp.Compare[int]}

		lt, gt := x.partition(10, 90)
		require.Less(t, lt, gt)
		p, q := s[lt], s[gt]
		require.LessOrEqual(t, p, q)
		for i := 10; i < lt; i++ {
			require.Less(t, s[i], p)
		}
		for i := lt + 1; i < gt; i++ {
			require.GreaterOrEqual(t, s[i], p)
			require.LessOrEqual(t, s[i], q)
		}
		for i := gt + 1; i < 90; i++ {
			require.Greater(t, s[i], q)
		}
	}
}

func TestHeapSort(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	s := randomArray(r, 500, 100)
	orig := slices.Clone(s)

	sorter[int]{s: s, cmp: cmp.Compare[int]}.heapSort(50, 450)

	expected := slices.Clone(orig)
	slices.Sort(expected[50:450])
	assert.Equal(t, expected, []int(s))
}

func TestIntroSortDepthExhausted(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	s := randomArray(r, 1000, 1000)
	expected := slices.Clone(s)
	slices.Sort(expected)

	sorter[int]{s: s, cmp: cmp.Compare[int]}.introSort(0, len(s), 1)
	assert.Equal(t, expected, []int(s))
}

func TestInsertionSort(t *testing.T) {
	s := Array[int]{9, 4, 3, 8, 1, 1, 0}
	sorter[int]{s: s, cmp: cmp.Compare[int]}.insertionSort(1, 6)
	assert.Equal(t, Array[int]{9, 1, 1, 3, 4, 8, 0}, s)
}
