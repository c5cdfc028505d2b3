package memo

import (
	"context"

	"github.com/google/uuid"
	"github.com/vital-tools/go-vital/logger"
)

// Scope holds the caches and properties of one worker or request. It replaces
// thread-local storage: a Scope is created by the owner of a unit of work and
// handed down through its context.
//
// A Scope is not safe for concurrent use; give each goroutine its own.
type Scope struct {
	id     string
	memos  map[any]any
	values map[string]any
}

// NewScope returns an empty Scope with a random ID.
func NewScope() *Scope {
	return &Scope{
		id:     uuid.NewString(),
		memos:  make(map[any]any),
		values: make(map[string]any),
	}
}

// ID identifies the scope in logs.
func (s *Scope) ID() string {
	return s.id
}

// Reset drops every cache and property held by the scope.
func (s *Scope) Reset() {
	clear(s.memos)
	clear(s.values)
}

type scopeContextKey struct{}

// WithScope returns a copy of ctx carrying s.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, s)
}

// ScopeFromContext returns the Scope carried by ctx.
func ScopeFromContext(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeContextKey{}).(*Scope)
	return s, ok && s != nil
}

// Scoped is a memoized computation whose cache lives in a Scope. Each Scope
// gets its own bounded cache built from the same Config, so work running
// under different scopes never shares or evicts each other's entries.
type Scoped[R any] struct {
	cfg  Config
	opts []Option
	name string
	log  logger.Logger
}

// NewScoped returns a Scoped computation. The options apply to every
// per-scope cache.
func NewScoped[R any](cfg Config, opts ...Option) *Scoped[R] {
	o := applyOptions(opts)
	return &Scoped[R]{cfg: cfg, opts: opts, name: o.name, log: o.log}
}

// In returns the Memo owned by scope, creating it on first use. A nil scope
// gets a disabled Memo that always computes.
func (s *Scoped[R]) In(scope *Scope) *Memo[R] {
	if scope == nil {
		return New[R](Config{}, s.opts...)
	}
	if m, ok := scope.memos[s].(*Memo[R]); ok {
		return m
	}
	m := New[R](s.cfg, s.opts...)
	scope.memos[s] = m
	return m
}

// Do runs compute through the cache of the Scope carried by ctx. Without a
// Scope the call computes directly.
func (s *Scoped[R]) Do(ctx context.Context, args Args, compute func() (R, error)) (R, error) {
	scope, ok := ScopeFromContext(ctx)
	if !ok {
		if logger.IsDebugEnabled(s.log) {
			s.log.Debug("[memo] no scope in context, computing %q directly", s.name)
		}
		return compute()
	}
	return s.In(scope).Do(args, compute)
}
