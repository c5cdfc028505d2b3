// Package cache provides bounded in-process key/value stores with least
// recently used eviction and optional expiry.
//
// # Stores
//
// Two stores are provided:
//
//   - [NewLRU] is a generic store built on
//     [github.com/hashicorp/golang-lru/v2/simplelru]. It holds at most the
//     configured number of entries and evicts the least recently used one when
//     a write would exceed that bound. Reads promote an entry to most recently
//     used. It has no internal locking and must not be shared between
//     goroutines.
//
//   - [NewSharded] is a string keyed store that is safe for concurrent use. Keys
//     are distributed over mutex guarded [LRU] shards using xxhash, and
//     concurrent misses for the same key are collapsed into one computation
//     with [golang.org/x/sync/singleflight].
//
// A capacity of zero or less produces a disabled store: nothing is kept and
// every GetOrCompute call runs the computation.
//
// # Expiry
//
// [WithTTL] attaches a deadline to every written value. The deadline is set on
// write and never extended by reads. A read at or past the deadline is a miss
// and removes the entry. Expired entries that are never read again are
// dropped by normal eviction or by [LRU.RemoveExpired]; no background
// goroutine is started.
//
//	c := cache.NewLRU[string, User](1024, cache.WithTTL(10*time.Minute))
//	user, err := c.GetOrCompute("user:123", func() (User, error) {
//	    return queries.GetUser(ctx, 123)
//	})
//
// # Error Handling
//
// GetOrCompute never stores a failed result. The error returned by the
// computation is handed back unchanged so callers can match it with
// errors.Is.
package cache
