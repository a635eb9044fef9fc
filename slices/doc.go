// Package slices provides generic helpers for Go slices on top of the seq
// package: indexed iteration, grouping, chunk-splitting, sorting by derived
// keys, range sorting and shuffling, min/max, sums and accessors which
// report absence with option.Option instead of zero values.
//
// Unless stated otherwise functions return new slices and do not modify
// their input. Functions which sort, shuffle or reverse operate in place.
package slices
