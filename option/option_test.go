package option_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.ytsaurus.tech/library/go/collection/option"
)

func TestSome(t *testing.T) {
	o := option.Some(0)
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.True(t, o.IsSome())
	assert.False(t, o.IsNone())
	assert.Equal(t, 0, o.OrElse(5))
	assert.Equal(t, "Some(0)", o.String())
}

func TestNone(t *testing.T) {
	var zero option.Option[string]
	assert.Equal(t, option.None[string](), zero)

	v, ok := zero.Get()
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, "default", zero.OrElse("default"))
	assert.Equal(t, "lazy", zero.OrElseFunc(func() string { return "lazy" }))
	assert.Nil(t, zero.Ptr())
	assert.Equal(t, "None", zero.String())
}

func TestPtr(t *testing.T) {
	value := 5
	tests := []struct {
		name string
		ptr  *int
		want option.Option[int]
	}{
		{
			name: "nil",
			ptr:  nil,
			want: option.None[int](),
		},
		{
			name: "not nil",
			ptr:  &value,
			want: option.Some(5),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := option.FromPtr(tt.ptr)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ptr, got.Ptr())
		})
	}

	p := option.Some(value).Ptr()
	*p = 6
	assert.Equal(t, 5, value)
}

func TestMap(t *testing.T) {
	assert.Equal(t, option.Some("42"), option.Map(option.Some(42), strconv.Itoa))
	assert.Equal(t, option.None[string](), option.Map(option.None[int](), strconv.Itoa))
}
