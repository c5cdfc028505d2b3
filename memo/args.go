package memo

import "sort"

// Args are the arguments of a memoized call. Positional values are compared
// in order, named values regardless of the order they were added in.
type Args struct {
	Positional []any
	Named      map[string]any
}

// A builds Args from positional values.
func A(positional ...any) Args {
	return Args{Positional: positional}
}

// With returns a copy of a with name set to val.
func (a Args) With(name string, val any) Args {
	named := make(map[string]any, len(a.Named)+1)
	for k, v := range a.Named {
		named[k] = v
	}
	named[name] = val
	return Args{Positional: a.Positional, Named: named}
}

// Len returns the total number of positional and named values.
func (a Args) Len() int {
	return len(a.Positional) + len(a.Named)
}

// names returns the named argument keys in sorted order.
func (a Args) names() []string {
	if len(a.Named) == 0 {
		return nil
	}
	names := make([]string, 0, len(a.Named))
	for name := range a.Named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
