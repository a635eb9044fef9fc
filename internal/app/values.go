package app

import (
	"cmp"
	"math"
	"unicode/utf8"

	"go.ytsaurus.tech/library/go/collection/compare"
	"go.ytsaurus.tech/library/go/core/xerrors"
)

// Rank of a decoded YSON value kind, values of lower rank go first.
const (
	rankEntity = iota
	rankBool
	rankNumber
	rankString
	rankList
	rankMap
	rankOther
)

func rank(v any) int {
	switch v.(type) {
	case nil:
		return rankEntity
	case bool:
		return rankBool
	case int64, uint64, float64:
		return rankNumber
	case string:
		return rankString
	case []any:
		return rankList
	case map[string]any:
		return rankMap
	default:
		return rankOther
	}
}

// CompareValues is a total order over values decoded from YSON.
// Numbers of different kinds compare by value, lists compare lexicographically
// and maps compare by size.
func CompareValues(a, b any) int {
	if c := cmp.Compare(rank(a), rank(b)); c != 0 {
		return c
	}

	switch a := a.(type) {
	case bool:
		b := b.(bool)
		switch {
		case a == b:
			return 0
		case !a:
			return -1
		default:
			return 1
		}
	case string:
		return cmp.Compare(a, b.(string))
	case []any:
		b := b.([]any)
		for i := range min(len(a), len(b)) {
			if c := CompareValues(a[i], b[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a), len(b))
	case map[string]any:
		return cmp.Compare(len(a), len(b.(map[string]any)))
	case int64, uint64, float64:
		return compareNumbers(a, b)
	}
	return 0
}

func compareNumbers(a, b any) int {
	switch a := a.(type) {
	case int64:
		switch b := b.(type) {
		case int64:
			return cmp.Compare(a, b)
		case uint64:
			if a < 0 {
				return -1
			}
			return cmp.Compare(uint64(a), b)
		}
	case uint64:
		switch b := b.(type) {
		case uint64:
			return cmp.Compare(a, b)
		case int64:
			return -compareNumbers(b, a)
		}
	}
	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(v any) float64 {
	switch v := v.(type) {
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float64:
		return v
	}
	return math.NaN()
}

const (
	KeyIdentity = "identity"
	KeyAbs      = "abs"
	KeyLen      = "len"
)

// KeyFunc returns the sort key extractor registered under name.
func KeyFunc(name string) (func(any) any, error) {
	switch name {
	case "", KeyIdentity:
		return func(v any) any { return v }, nil
	case KeyAbs:
		return absKey, nil
	case KeyLen:
		return lenKey, nil
	default:
		return nil, xerrors.Errorf("unknown sort key %q", name)
	}
}

func absKey(v any) any {
	switch v := v.(type) {
	case int64:
		if v < 0 {
			// -math.MinInt64 does not fit into int64.
			return uint64(-(v + 1)) + 1
		}
		return v
	case float64:
		return math.Abs(v)
	}
	return v
}

// lenKey is the number of runes of a string and the number of items of a
// list or a map. Other values have zero length.
func lenKey(v any) any {
	switch v := v.(type) {
	case string:
		return int64(utf8.RuneCountInString(v))
	case []any:
		return int64(len(v))
	case map[string]any:
		return int64(len(v))
	}
	return int64(0)
}

// ValueComparator orders values with CompareValues, descending if desc is set.
func ValueComparator(desc bool) compare.Comparator[any] {
	c := compare.Comparator[any](CompareValues)
	if desc {
		return c.Inverse()
	}
	return c
}
