package slices

import (
	"go.ytsaurus.tech/library/go/core/xerrors"
)

// IndexedEntity is a slice element paired with its original index.
type IndexedEntity[T any] struct {
	Value T
	Index int
}

// GroupBy groups elements by keys returned by keyGetter, keeping original order inside groups.
func GroupBy[S ~[]T, T any, K comparable](s S, keyGetter func(T) K) map[K][]T {
	res := make(map[K][]T)
	for _, v := range s {
		key := keyGetter(v)
		res[key] = append(res[key], v)
	}
	return res
}

// GroupByWithIndex is like GroupBy, but keeps element indices.
func GroupByWithIndex[S ~[]T, T any, K comparable](s S, keyGetter func(T) K) map[K][]IndexedEntity[T] {
	res := make(map[K][]IndexedEntity[T])
	for i, v := range s {
		key := keyGetter(v)
		res[key] = append(res[key], IndexedEntity[T]{Value: v, Index: i})
	}
	return res
}

// GroupByUniqueKey maps every element by its key and fails if a key is met twice.
func GroupByUniqueKey[S ~[]T, T any, K comparable](s S, keyGetter func(T) K) (map[K]T, error) {
	res := make(map[K]T, len(s))
	for i, v := range s {
		key := keyGetter(v)
		if _, ok := res[key]; ok {
			return nil, xerrors.Errorf("duplicate key %v at index %d", key, i)
		}
		res[key] = v
	}
	return res, nil
}

// GroupByUniqueKeyWithIndex is like GroupByUniqueKey, but keeps element indices.
func GroupByUniqueKeyWithIndex[S ~[]T, T any, K comparable](s S, keyGetter func(T) K) (map[K]IndexedEntity[T], error) {
	res := make(map[K]IndexedEntity[T], len(s))
	for i, v := range s {
		key := keyGetter(v)
		if _, ok := res[key]; ok {
			return nil, xerrors.Errorf("duplicate key %v at index %d", key, i)
		}
		res[key] = IndexedEntity[T]{Value: v, Index: i}
	}
	return res, nil
}

// GroupSetsBy groups distinct elements by keys returned by keyGetter.
func GroupSetsBy[S ~[]T, T, K comparable](s S, keyGetter func(T) K) map[K]map[T]struct{} {
	res := make(map[K]map[T]struct{})
	for _, v := range s {
		key := keyGetter(v)
		set, ok := res[key]
		if !ok {
			set = make(map[T]struct{})
			res[key] = set
		}
		set[v] = struct{}{}
	}
	return res
}

// GroupFoldBy folds elements of every group into a single value.
// combine receives false as the second argument for the first element of a group.
func GroupFoldBy[S ~[]T, T any, K comparable, G any](s S, keyGetter func(T) K, combine func(prev G, ok bool, v T) G) map[K]G {
	res := make(map[K]G)
	for _, v := range s {
		key := keyGetter(v)
		prev, ok := res[key]
		res[key] = combine(prev, ok, v)
	}
	return res
}
