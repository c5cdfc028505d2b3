package slice

import (
	"math/rand/v2"
	"reflect"
	"strings"
)

type withOpts struct {
	caseInsensitive bool
}

// WithOpt configures string comparisons.
type WithOpt func(opts *withOpts)

// WithCaseInsensitive compares strings case-insensitively.
func WithCaseInsensitive() WithOpt {
	return func(opts *withOpts) {
		opts.caseInsensitive = true
	}
}

// Contains returns true if val is found in slice.
func Contains(slice []string, val string, opts ...WithOpt) bool {
	var o withOpts
	for _, opt := range opts {
		opt(&o)
	}
	for _, s := range slice {
		if s == val || (o.caseInsensitive && strings.EqualFold(s, val)) {
			return true
		}
	}
	return false
}

// ContainsAny returns true if any of vals is found in slice.
func ContainsAny(slice []string, vals ...string) bool {
	for _, val := range vals {
		if Contains(slice, val) {
			return true
		}
	}
	return false
}

// Omit returns the elements of slice that are not in vals.
func Omit[T comparable](slice []T, vals ...T) []T {
	skip := make(map[T]struct{}, len(vals))
	for _, v := range vals {
		skip[v] = struct{}{}
	}
	var res []T
	for _, v := range slice {
		if _, ok := skip[v]; !ok {
			res = append(res, v)
		}
	}
	return res
}

// Unique returns slice without repeated elements, keeping the first
// occurrence of each.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	res := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

// Grouped splits slice into consecutive groups of size elements. Trailing
// elements that do not fill a whole group are dropped.
//
//	Grouped([]int{0, 1, 2, 3, 4, 5}, 3) // [[0 1 2] [3 4 5]]
func Grouped[T any](slice []T, size int) [][]T {
	if size <= 0 {
		return nil
	}
	groups := make([][]T, 0, len(slice)/size)
	for i := 0; i+size <= len(slice); i += size {
		groups = append(groups, slice[i:i+size:i+size])
	}
	return groups
}

// Pairwise is Grouped with a size of two.
func Pairwise[T any](slice []T) [][]T {
	return Grouped(slice, 2)
}

// Flatten returns the values with every nested slice or array expanded in
// place, recursively.
//
//	Flatten([]any{1, 2}, []any{3, []int{4, 5}}) // [1 2 3 4 5]
func Flatten(values ...any) []any {
	var res []any
	for _, v := range values {
		res = flattenInto(res, v)
	}
	return res
}

func flattenInto(res []any, v any) []any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if _, ok := v.([]byte); ok {
			return append(res, v)
		}
		for i := 0; i < rv.Len(); i++ {
			res = flattenInto(res, rv.Index(i).Interface())
		}
		return res
	default:
		return append(res, v)
	}
}

// Compact returns slice without nil elements.
func Compact[T any](slice []*T) []*T {
	res := make([]*T, 0, len(slice))
	for _, v := range slice {
		if v != nil {
			res = append(res, v)
		}
	}
	return res
}

// Shuffled returns a randomly ordered copy of slice.
func Shuffled[T any](slice []T) []T {
	res := make([]T, len(slice))
	copy(res, slice)
	rand.Shuffle(len(res), func(i, j int) {
		res[i], res[j] = res[j], res[i]
	})
	return res
}
