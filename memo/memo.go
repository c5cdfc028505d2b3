package memo

import (
	"sync/atomic"

	"github.com/vital-tools/go-vital/cache"
	"github.com/vital-tools/go-vital/logger"
)

type options struct {
	name   string
	filter Filter
	keyer  Keyer
	log    logger.Logger
	clock  cache.Clock
}

// Option configures a Memo.
type Option func(*options)

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFilter bypasses the cache for calls with an argument rejected by f.
func WithFilter(f Filter) Option {
	return func(o *options) { o.filter = f }
}

// WithKeyer overrides the Keyer selected by Config.KeyStrategy.
func WithKeyer(k Keyer) Option {
	return func(o *options) { o.keyer = k }
}

// WithLogger emits a debug line whenever a call bypasses the cache.
func WithLogger(log logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithClock sets the time source used for expiry.
func WithClock(clock cache.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithName labels log output for the memoized function.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

type store[R any] interface {
	GetOrCompute(key string, compute cache.Computer[R]) (R, error)
	Expire(key string) bool
	Len() int
	Purge()
	Stats() cache.Stats
}

var (
	_ store[int] = (*cache.LRU[string, int])(nil)
	_ store[int] = (*cache.Sharded[int])(nil)
)

// Stats are the counters of a Memo.
type Stats struct {
	cache.Stats
	// Bypassed counts calls that skipped the cache because an argument was
	// filtered out or no key could be derived.
	Bypassed uint64
}

// Memo caches the results of a computation keyed by its arguments.
//
// Unless Config.Concurrent is set a Memo must not be used from more than one
// goroutine at a time.
type Memo[R any] struct {
	cfg      Config
	filter   Filter
	keyer    Keyer
	log      logger.Logger
	store    store[R]
	bypassed atomic.Uint64
}

// New returns a Memo for cfg. A non-positive Config.Capacity returns a Memo
// that always computes.
func New[R any](cfg Config, opts ...Option) *Memo[R] {
	o := applyOptions(opts)
	m := &Memo[R]{
		cfg:    cfg,
		filter: o.filter,
		keyer:  o.keyer,
	}
	if m.keyer == nil {
		m.keyer = NewKeyer(cfg.KeyStrategy)
	}
	if o.log != nil {
		m.log = o.log.WithPrefix("[memo]")
		if o.name != "" {
			m.log = logger.WithKV(m.log, "memo", o.name)
		}
	}
	if !cfg.Enabled() {
		return m
	}
	storeOpts := []cache.Option{cache.WithTTL(cfg.TTL)}
	if o.clock != nil {
		storeOpts = append(storeOpts, cache.WithClock(o.clock))
	}
	if cfg.Concurrent {
		m.store = cache.NewSharded[R](cfg.Capacity, cfg.Shards, storeOpts...)
	} else {
		m.store = cache.NewLRU[string, R](cfg.Capacity, storeOpts...)
	}
	return m
}

// Config returns the configuration the Memo was built with.
func (m *Memo[R]) Config() Config {
	return m.cfg
}

// Do returns the cached result for args or runs compute and caches its
// result. Errors from compute are returned unchanged and never cached. Calls
// whose arguments fail the filter or cannot be keyed run compute directly.
func (m *Memo[R]) Do(args Args, compute func() (R, error)) (R, error) {
	if m.store == nil {
		return compute()
	}
	if !allowed(m.filter, args) {
		m.bypass(args, "argument rejected by filter", nil)
		return compute()
	}
	key, err := m.keyer.Key(args)
	if err != nil {
		m.bypass(args, "key derivation failed", err)
		return compute()
	}
	return m.store.GetOrCompute(key, compute)
}

func (m *Memo[R]) bypass(args Args, reason string, err error) {
	m.bypassed.Add(1)
	if !logger.IsDebugEnabled(m.log) {
		return
	}
	if err != nil {
		m.log.Debug("cache bypassed for %d args: %s: %v", args.Len(), reason, err)
		return
	}
	m.log.Debug("cache bypassed for %d args: %s", args.Len(), reason)
}

// Forget drops the cached result for args, if any.
func (m *Memo[R]) Forget(args Args) bool {
	if m.store == nil || !allowed(m.filter, args) {
		return false
	}
	key, err := m.keyer.Key(args)
	if err != nil {
		return false
	}
	return m.store.Expire(key)
}

// Len returns the number of cached results.
func (m *Memo[R]) Len() int {
	if m.store == nil {
		return 0
	}
	return m.store.Len()
}

// Purge drops every cached result.
func (m *Memo[R]) Purge() {
	if m.store != nil {
		m.store.Purge()
	}
}

// Stats returns a snapshot of the Memo counters.
func (m *Memo[R]) Stats() Stats {
	var s Stats
	if m.store != nil {
		s.Stats = m.store.Stats()
	}
	s.Bypassed = m.bypassed.Load()
	return s
}
