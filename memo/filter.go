package memo

import "reflect"

// Filter decides whether a value may take part in a cache key. When any
// argument of a call is rejected the call bypasses the cache.
type Filter interface {
	Allow(v any) bool
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(v any) bool

func (f FilterFunc) Allow(v any) bool {
	return f(v)
}

// Comparable allows nil and any value whose dynamic type is comparable, which
// excludes slices, maps, funcs and structs or arrays containing them.
func Comparable() Filter {
	return FilterFunc(func(v any) bool {
		if v == nil {
			return true
		}
		return reflect.TypeOf(v).Comparable()
	})
}

// AllowTypes allows values whose dynamic type equals the type of one of the
// samples.
//
//	memo.AllowTypes("", 0) // strings and ints
func AllowTypes(samples ...any) Filter {
	types := make(map[reflect.Type]struct{}, len(samples))
	for _, s := range samples {
		types[reflect.TypeOf(s)] = struct{}{}
	}
	return FilterFunc(func(v any) bool {
		_, ok := types[reflect.TypeOf(v)]
		return ok
	})
}

// AllowKinds allows values whose dynamic type has one of the given kinds. nil
// is allowed when reflect.Invalid is listed.
func AllowKinds(kinds ...reflect.Kind) Filter {
	set := make(map[reflect.Kind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return FilterFunc(func(v any) bool {
		_, ok := set[reflect.ValueOf(v).Kind()]
		return ok
	})
}

// allowed checks every positional value, every argument name and every named
// value against f.
func allowed(f Filter, args Args) bool {
	if f == nil {
		return true
	}
	for _, v := range args.Positional {
		if !f.Allow(v) {
			return false
		}
	}
	for name, v := range args.Named {
		if !f.Allow(name) || !f.Allow(v) {
			return false
		}
	}
	return true
}
