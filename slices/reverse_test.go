package slices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.ytsaurus.tech/library/go/collection/seq"
	"go.ytsaurus.tech/library/go/collection/slices"
)

func TestReverse(t *testing.T) {
	val := []string{"1", "2", "4", "3"}
	expected := []string{"3", "4", "2", "1"}
	assert.Equal(t, expected, slices.Reverse(val))
	assert.Empty(t, slices.Reverse([]string{}))
}

func TestReverseRange(t *testing.T) {
	val := []int{1, 2, 3, 4, 5}
	assert.NoError(t, slices.ReverseRange(val, 1, 4))
	assert.Equal(t, []int{1, 4, 3, 2, 5}, val)

	assert.ErrorIs(t, slices.ReverseRange(val, -1, 2), seq.ErrInvalidRange)
	assert.Equal(t, []int{1, 4, 3, 2, 5}, val)
}
