package cache

import "time"

// Stats is a snapshot of store counters.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

// Add returns the sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Hits:        s.Hits + o.Hits,
		Misses:      s.Misses + o.Misses,
		Evictions:   s.Evictions + o.Evictions,
		Expirations: s.Expirations + o.Expirations,
	}
}

// Clock returns the current time. Tests swap it to control expiry.
type Clock func() time.Time

// config holds the resolved configuration for a store.
type config struct {
	ttl   time.Duration
	clock Clock
}

// Option configures a store.
type Option func(*config)

func defaultConfig() config {
	return config{
		clock: time.Now,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.clock == nil {
		cfg.clock = time.Now
	}
	return cfg
}

// WithTTL sets the time-to-live for stored values. The deadline is fixed when
// a value is written and is not extended by reads. Zero or negative means
// values never expire.
func WithTTL(d time.Duration) Option {
	return func(c *config) { c.ttl = d }
}

// WithClock replaces the time source used to stamp and check expiry.
func WithClock(clock Clock) Option {
	return func(c *config) { c.clock = clock }
}

// Computer produces the value for a missing key. A non-nil error means the
// value must not be stored.
type Computer[V any] func() (V, error)
