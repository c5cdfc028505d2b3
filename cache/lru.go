package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

type value[V any] struct {
	object  V
	expires time.Time
	hits    int
}

func (v *value[V]) expired(now time.Time) bool {
	return !v.expires.IsZero() && !now.Before(v.expires)
}

// LRU is a fixed capacity store that evicts the least recently used entry
// when a write would exceed capacity.
//
// An LRU is not safe for concurrent use. Give each goroutine its own store or
// use [Sharded].
type LRU[K comparable, V any] struct {
	cfg      config
	capacity int
	store    *simplelru.LRU[K, *value[V]]
	stats    Stats
}

// NewLRU returns a store holding at most capacity entries. A capacity of zero
// or less returns a disabled store that never holds anything.
func NewLRU[K comparable, V any](capacity int, opts ...Option) *LRU[K, V] {
	c := &LRU[K, V]{cfg: applyOptions(opts)}
	if capacity <= 0 {
		return c
	}
	store, err := simplelru.NewLRU[K, *value[V]](capacity, nil)
	if err != nil {
		return c
	}
	c.capacity = capacity
	c.store = store
	return c
}

// Enabled returns false when the store was built with a non-positive capacity.
func (c *LRU[K, V]) Enabled() bool {
	return c.store != nil
}

// Capacity returns the configured bound, or zero for a disabled store.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// TTL returns the configured time-to-live.
func (c *LRU[K, V]) TTL() time.Duration {
	return c.cfg.ttl
}

// lookup returns the live entry for key, dropping it if it has expired.
func (c *LRU[K, V]) lookup(key K, promote bool) (*value[V], bool) {
	if c.store == nil {
		return nil, false
	}
	var (
		val *value[V]
		ok  bool
	)
	if promote {
		val, ok = c.store.Get(key)
	} else {
		val, ok = c.store.Peek(key)
	}
	if !ok {
		return nil, false
	}
	if val.expired(c.cfg.clock()) {
		c.store.Remove(key)
		c.stats.Expirations++
		return nil, false
	}
	return val, true
}

// Get returns the value for key and marks it most recently used. Expired
// entries are removed and reported as not found.
func (c *LRU[K, V]) Get(key K) (bool, V) {
	val, ok := c.lookup(key, true)
	if !ok {
		c.stats.Misses++
		var zero V
		return false, zero
	}
	c.stats.Hits++
	val.hits++
	return true, val.object
}

// Peek returns the value for key without touching its recency or hit count.
func (c *LRU[K, V]) Peek(key K) (bool, V) {
	val, ok := c.lookup(key, false)
	if !ok {
		var zero V
		return false, zero
	}
	return true, val.object
}

// Set stores val under key as the most recently used entry, resetting its
// expiry and hit count. It returns true if another entry was evicted to make
// room.
func (c *LRU[K, V]) Set(key K, val V) bool {
	if c.store == nil {
		return false
	}
	var expires time.Time
	if c.cfg.ttl > 0 {
		expires = c.cfg.clock().Add(c.cfg.ttl)
	}
	evicted := c.store.Add(key, &value[V]{object: val, expires: expires})
	if evicted {
		c.stats.Evictions++
	}
	return evicted
}

// Hits returns the number of reads served for key since it was last written.
func (c *LRU[K, V]) Hits(key K) (bool, int) {
	val, ok := c.lookup(key, false)
	if !ok {
		return false, 0
	}
	return true, val.hits
}

// Expire removes key from the store.
func (c *LRU[K, V]) Expire(key K) bool {
	if c.store == nil {
		return false
	}
	return c.store.Remove(key)
}

// GetOrCompute returns the stored value for key, or calls compute, stores its
// result and returns it. Errors from compute are returned as-is and nothing is
// stored.
func (c *LRU[K, V]) GetOrCompute(key K, compute Computer[V]) (V, error) {
	if c.store == nil {
		return compute()
	}
	if found, val := c.Get(key); found {
		return val, nil
	}
	result, err := compute()
	if err != nil {
		return result, err
	}
	c.Set(key, result)
	return result, nil
}

// Len returns the number of stored entries, including ones that have expired
// but not yet been read.
func (c *LRU[K, V]) Len() int {
	if c.store == nil {
		return 0
	}
	return c.store.Len()
}

// Keys returns the live keys ordered from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	if c.store == nil {
		return nil
	}
	now := c.cfg.clock()
	keys := make([]K, 0, c.store.Len())
	for _, key := range c.store.Keys() {
		if val, ok := c.store.Peek(key); ok && !val.expired(now) {
			keys = append(keys, key)
		}
	}
	return keys
}

// RemoveExpired drops every expired entry and returns how many were removed.
func (c *LRU[K, V]) RemoveExpired() int {
	if c.store == nil || c.cfg.ttl <= 0 {
		return 0
	}
	now := c.cfg.clock()
	var removed int
	for _, key := range c.store.Keys() {
		if val, ok := c.store.Peek(key); ok && val.expired(now) {
			c.store.Remove(key)
			removed++
		}
	}
	c.stats.Expirations += uint64(removed)
	return removed
}

// Purge removes every entry. Counters are kept.
func (c *LRU[K, V]) Purge() {
	if c.store != nil {
		c.store.Purge()
	}
}

// Stats returns a snapshot of the store counters.
func (c *LRU[K, V]) Stats() Stats {
	return c.stats
}
