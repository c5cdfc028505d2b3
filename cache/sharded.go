package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

type shard[V any] struct {
	mutex sync.Mutex
	lru   *LRU[string, V]
}

// Sharded is a string keyed store that is safe for concurrent use. Keys are
// spread over independently locked LRU shards, so recency is tracked per
// shard. With a single shard the eviction order is exact.
type Sharded[V any] struct {
	shards []*shard[V]
	group  singleflight.Group
}

// NewSharded returns a concurrent store bounded to capacity entries in total.
// Each shard holds capacity/shards entries. If capacity is smaller than the
// shard count the shard count is reduced so that every shard holds at least
// one entry. A non-positive capacity returns a disabled store.
func NewSharded[V any](capacity int, shards int, opts ...Option) *Sharded[V] {
	s := &Sharded[V]{}
	if capacity <= 0 {
		return s
	}
	if shards <= 0 {
		shards = 1
	}
	if shards > capacity {
		shards = capacity
	}
	per := capacity / shards
	s.shards = make([]*shard[V], shards)
	for i := range s.shards {
		s.shards[i] = &shard[V]{lru: NewLRU[string, V](per, opts...)}
	}
	return s
}

// Enabled returns false when the store was built with a non-positive capacity.
func (s *Sharded[V]) Enabled() bool {
	return len(s.shards) > 0
}

func (s *Sharded[V]) shard(key string) *shard[V] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[xxhash.Sum64String(key)%uint64(len(s.shards))]
}

// Get returns the value for key and marks it most recently used.
func (s *Sharded[V]) Get(key string) (bool, V) {
	if !s.Enabled() {
		var zero V
		return false, zero
	}
	sh := s.shard(key)
	sh.mutex.Lock()
	defer sh.mutex.Unlock()
	return sh.lru.Get(key)
}

// Set stores val under key.
func (s *Sharded[V]) Set(key string, val V) bool {
	if !s.Enabled() {
		return false
	}
	sh := s.shard(key)
	sh.mutex.Lock()
	defer sh.mutex.Unlock()
	return sh.lru.Set(key, val)
}

// Expire removes key from the store.
func (s *Sharded[V]) Expire(key string) bool {
	if !s.Enabled() {
		return false
	}
	sh := s.shard(key)
	sh.mutex.Lock()
	defer sh.mutex.Unlock()
	return sh.lru.Expire(key)
}

// GetOrCompute returns the stored value for key or computes it. Concurrent
// misses for the same key share a single call to compute. Errors from compute
// are returned as-is to every waiting caller and nothing is stored.
func (s *Sharded[V]) GetOrCompute(key string, compute Computer[V]) (V, error) {
	if !s.Enabled() {
		return compute()
	}
	if found, val := s.Get(key); found {
		return val, nil
	}
	res, err, _ := s.group.Do(key, func() (any, error) {
		val, err := compute()
		if err != nil {
			return nil, err
		}
		s.Set(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	val, _ := res.(V)
	return val, nil
}

// Len returns the number of stored entries across all shards.
func (s *Sharded[V]) Len() int {
	var n int
	for _, sh := range s.shards {
		sh.mutex.Lock()
		n += sh.lru.Len()
		sh.mutex.Unlock()
	}
	return n
}

// Capacity returns the total bound across all shards.
func (s *Sharded[V]) Capacity() int {
	var n int
	for _, sh := range s.shards {
		n += sh.lru.Capacity()
	}
	return n
}

// Purge removes every entry from every shard.
func (s *Sharded[V]) Purge() {
	for _, sh := range s.shards {
		sh.mutex.Lock()
		sh.lru.Purge()
		sh.mutex.Unlock()
	}
}

// Stats returns the counters summed over all shards.
func (s *Sharded[V]) Stats() Stats {
	var total Stats
	for _, sh := range s.shards {
		sh.mutex.Lock()
		total = total.Add(sh.lru.Stats())
		sh.mutex.Unlock()
	}
	return total
}
