package slices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.ytsaurus.tech/library/go/collection/slices"
)

func TestEqualUnordered(t *testing.T) {
	testCases := []struct {
		name string
		a, b []string
		want bool
	}{
		{"permutation", []string{"x", "y", "z"}, []string{"z", "x", "y"}, true},
		{"both_empty", []string{}, nil, true},
		{"multiplicity", []string{"x", "y", "y"}, []string{"x", "x", "y"}, false},
		{"shorter", []string{"x"}, []string{"x", "x"}, false},
		{"disjoint", []string{"x"}, []string{"y"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slices.EqualUnordered(tc.a, tc.b))
			assert.Equal(t, tc.want, slices.EqualUnordered(tc.b, tc.a))
		})
	}
}
