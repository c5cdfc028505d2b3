// Package dict has helpers for merging, ranking and walking maps.
package dict

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrKeyNotFound is returned by [GetIn] when a path segment is missing.
var ErrKeyNotFound = errors.New("key not found")

// Pair is a single map entry.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Merge returns a new map holding the entries of every input. Later maps win
// on conflicting keys. The inputs are not modified.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	var n int
	for _, m := range ms {
		n += len(m)
	}
	out := make(map[K]V, n)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}

// RankBy returns the entries of m sorted with compare. Ties keep key order so
// the result is stable across calls.
func RankBy[K cmp.Ordered, V any](m map[K]V, compare func(a, b Pair[K, V]) int) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: m[k]})
	}
	slices.SortStableFunc(pairs, compare)
	return pairs
}

// Rank returns the entries of m in ascending value order.
func Rank[K cmp.Ordered, V cmp.Ordered](m map[K]V) []Pair[K, V] {
	return RankBy(m, func(a, b Pair[K, V]) int {
		return cmp.Compare(a.Value, b.Value)
	})
}

// RevRank returns the entries of m in descending value order.
func RevRank[K cmp.Ordered, V cmp.Ordered](m map[K]V) []Pair[K, V] {
	return RankBy(m, func(a, b Pair[K, V]) int {
		return cmp.Compare(b.Value, a.Value)
	})
}

// GetIn looks up a period separated path in nested maps.
//
//	GetIn(map[string]any{"foo": map[string]any{"bar": true}}, "foo.bar") // true
func GetIn(obj map[string]any, path string) (any, error) {
	var cur any = obj
	parts := strings.Split(path, ".")
	for i, part := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, errors.Wrapf(ErrKeyNotFound, "%s is not a map", strings.Join(parts[:i], "."))
		}
		if cur, ok = m[part]; !ok {
			return nil, errors.Wrapf(ErrKeyNotFound, "%s", strings.Join(parts[:i+1], "."))
		}
	}
	return cur, nil
}
