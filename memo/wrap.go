package memo

import "context"

// Wrap memoizes fn, keying on the full Args value.
func Wrap[R any](fn func(Args) (R, error), cfg Config, opts ...Option) func(Args) (R, error) {
	m := New[R](cfg, opts...)
	return func(args Args) (R, error) {
		return m.Do(args, func() (R, error) { return fn(args) })
	}
}

// Wrap1 memoizes a single argument function.
func Wrap1[A, R any](fn func(A) (R, error), cfg Config, opts ...Option) func(A) (R, error) {
	m := New[R](cfg, opts...)
	return func(a A) (R, error) {
		return m.Do(Args{Positional: []any{a}}, func() (R, error) { return fn(a) })
	}
}

// Wrap2 memoizes a two argument function.
func Wrap2[A, B, R any](fn func(A, B) (R, error), cfg Config, opts ...Option) func(A, B) (R, error) {
	m := New[R](cfg, opts...)
	return func(a A, b B) (R, error) {
		return m.Do(Args{Positional: []any{a, b}}, func() (R, error) { return fn(a, b) })
	}
}

// WrapPure1 memoizes a single argument function that cannot fail.
func WrapPure1[A, R any](fn func(A) R, cfg Config, opts ...Option) func(A) R {
	m := New[R](cfg, opts...)
	return func(a A) R {
		r, _ := m.Do(Args{Positional: []any{a}}, func() (R, error) { return fn(a), nil })
		return r
	}
}

// WrapScoped1 memoizes fn per Scope found in the call's context. The context
// is not part of the key. Calls without a Scope compute directly.
func WrapScoped1[A, R any](fn func(context.Context, A) (R, error), cfg Config, opts ...Option) func(context.Context, A) (R, error) {
	s := NewScoped[R](cfg, opts...)
	return func(ctx context.Context, a A) (R, error) {
		return s.Do(ctx, Args{Positional: []any{a}}, func() (R, error) { return fn(ctx, a) })
	}
}
