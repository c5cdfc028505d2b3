// Package memo memoizes computations keyed by their call arguments in a
// bounded, in-process cache.
//
// # Memo
//
// A [Memo] owns a bounded LRU cache built from an explicit [Config]:
//
//	m := memo.New[User](memo.Config{Capacity: 1024, TTL: 10 * time.Minute})
//	user, err := m.Do(memo.A(id), func() (User, error) {
//	    return queries.GetUser(ctx, id)
//	})
//
// On a hit the stored result is returned and becomes the most recently used
// entry. On a miss (or an expired entry) the computation runs, its result is
// stored and, if the cache is full, the least recently used entry is evicted.
// A Capacity of zero or less disables caching.
//
// [Wrap], [Wrap1], [Wrap2] and [WrapPure1] return a function with the same
// signature as the one they wrap:
//
//	fib := memo.WrapPure1(slowFib, memo.Config{Capacity: 128})
//
// A type that memoizes one of its methods builds the Memo in its constructor,
// so every instance owns a cache with its own size and TTL.
//
// # Keys
//
// [KeyString] renders arguments with %#v. It is fast but two different values
// with the same text (or one value whose text changes, such as a pointer to
// mutable data) make the cache return wrong results. [KeySerialized] encodes
// arguments with msgpack along with their dynamic types and works for any
// value msgpack can encode. [KeyHashed] stores a 64-bit hashstructure digest
// of the values and their types.
//
// Neither encoder sees unexported struct fields, so both refuse arguments
// holding such structs unless the type encodes itself: a msgpack or encoding
// marshaler for [KeySerialized], time.Time or a hashstructure.Hashable for
// [KeyHashed].
//
// A key that cannot be derived, for example because an argument is a func, a
// channel or a struct with unexported fields, never fails the call: the
// computation runs uncached.
//
// # Filters
//
// [WithFilter] restricts caching to calls whose positional values, argument
// names and named values all pass the filter. Other calls run uncached and
// never touch the store. With [WithLogger] the bypass is reported at debug
// level; otherwise it is silent.
//
// # Errors
//
// Errors returned by the computation reach the caller unchanged and nothing
// is stored for that call.
//
// # Concurrency
//
// A Memo is not safe for concurrent use unless Config.Concurrent is set, in
// which case it is backed by a sharded, mutex guarded store and concurrent
// misses for the same key share one computation.
//
// For per-worker caches use a [Scope]. The owner of a unit of work creates a
// Scope, attaches it with [WithScope], and [Scoped] computations and
// [Property] values find it in the context:
//
//	ctx = memo.WithScope(ctx, memo.NewScope())
//	render := memo.WrapScoped1(renderTemplate, memo.Config{Capacity: 64})
//	html, err := render(ctx, "index")
package memo
