package slices_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.ytsaurus.tech/library/go/collection/slices"
)

func TestDedup(t *testing.T) {
	testCases := []struct {
		given, expected []string
	}{
		{[]string{"x"}, []string{"x"}},
		{[]string{"b", "a", "b", "c", "a"}, []string{"a", "b", "c"}},
		{[]string{"d", "c", "b", "a"}, []string{"a", "b", "c", "d"}},
		{[]string{}, []string{}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, slices.Dedup(tc.given))
	}
}

func TestDedupBools(t *testing.T) {
	assert.Equal(t, []bool{false, true}, slices.DedupBools([]bool{true, false, true, false}))
	assert.Equal(t, []bool{true}, slices.DedupBools([]bool{true, true}))
}

func TestDedupFunc(t *testing.T) {
	given := []order{{"c", 3}, {"a", 1}, {"c", 30}, {"b", 2}, {"a", 10}}
	res := slices.DedupFunc(given, func(a, b order) int { return strings.Compare(a.customer, b.customer) })
	assert.Equal(t, []string{"a", "b", "c"}, slices.Map(res, func(o order) string { return o.customer }))
}

func BenchmarkDedup(b *testing.B) {
	data := make([]int, 1000)
	for i := range data {
		data[i] = (i * 7919) % 97
	}
	buf := make([]int, len(data))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, data)
		_ = slices.Dedup(buf)
	}
}
