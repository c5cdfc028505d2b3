package memo

import (
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

type secret struct {
	n int
}

type wrapper struct {
	Inner secret
}

// label encodes and hashes itself, so its unexported field is keyed.
type label struct {
	name string
}

func (l label) MarshalText() ([]byte, error) {
	return []byte(l.name), nil
}

func (l label) Hash() (uint64, error) {
	return xxhash.Sum64String(l.name), nil
}

func allStrategies() []KeyStrategy {
	return []KeyStrategy{KeyString, KeySerialized, KeyHashed}
}

func TestKeyDeterministic(t *testing.T) {
	for _, strategy := range allStrategies() {
		t.Run(strategy.String(), func(t *testing.T) {
			keyer := NewKeyer(strategy)
			args := A(1, "two", point{3, 4}, []string{"a", "b"}).With("flag", true).With("limit", 10)
			k1, err := keyer.Key(args)
			require.NoError(t, err)
			k2, err := keyer.Key(A(1, "two", point{3, 4}, []string{"a", "b"}).With("limit", 10).With("flag", true))
			require.NoError(t, err)
			assert.Equal(t, k1, k2)
		})
	}
}

func TestKeyDistinguishesValues(t *testing.T) {
	for _, strategy := range allStrategies() {
		t.Run(strategy.String(), func(t *testing.T) {
			keyer := NewKeyer(strategy)
			keys := map[string]Args{}
			for _, args := range []Args{
				A(),
				A(1),
				A(2),
				A("1"),
				A(1, 2),
				A(point{1, 2}),
				A(point{2, 1}),
				A().With("a", 1),
				A().With("b", 1),
				A(1).With("a", 2),
				A(false),
				A(true),
				A(int8(0)),
				A(time.Unix(1, 0).UTC()),
				A(time.Unix(2, 0).UTC()),
				A(label{"a"}),
				A(label{"b"}),
			} {
				key, err := keyer.Key(args)
				require.NoError(t, err)
				_, dup := keys[key]
				assert.False(t, dup, "duplicate key for %#v", args)
				keys[key] = args
			}
		})
	}
}

func TestSerializedKeyIncludesType(t *testing.T) {
	keyer := NewKeyer(KeySerialized)
	k1, err := keyer.Key(A(int(1)))
	require.NoError(t, err)
	k2, err := keyer.Key(A(int64(1)))
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestStringKeyFormat(t *testing.T) {
	key, err := NewKeyer(KeyString).Key(A(1, "a").With("b", 2))
	require.NoError(t, err)
	assert.Equal(t, `(1, "a"; b=2)`, key)
}

func TestKeyFailsForUnsupportedValues(t *testing.T) {
	for _, strategy := range []KeyStrategy{KeySerialized, KeyHashed} {
		t.Run(strategy.String(), func(t *testing.T) {
			_, err := NewKeyer(strategy).Key(A(func() {}))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrKeyDerivation))
		})
	}
}

func TestKeyerRecoversPanic(t *testing.T) {
	keyer := safeKeyer{KeyerFunc(func(Args) (string, error) {
		panic("boom")
	})}
	_, err := keyer.Key(A(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKeyDerivation))
	assert.Contains(t, err.Error(), "boom")
}

func TestKeyRejectsUnexportedFields(t *testing.T) {
	for _, strategy := range []KeyStrategy{KeySerialized, KeyHashed} {
		t.Run(strategy.String(), func(t *testing.T) {
			keyer := NewKeyer(strategy)
			for _, args := range []Args{
				A(secret{1}),
				A(&secret{1}),
				A([]secret{{1}}),
				A(wrapper{secret{1}}),
				A(map[string]any{"s": secret{1}}),
				A().With("s", secret{1}),
			} {
				_, err := keyer.Key(args)
				assert.True(t, errors.Is(err, ErrKeyDerivation), "expected key failure for %#v", args)
			}
		})
	}
}

func TestStringKeyShowsUnexportedFields(t *testing.T) {
	keyer := NewKeyer(KeyString)
	k1, err := keyer.Key(A(secret{1}))
	require.NoError(t, err)
	k2, err := keyer.Key(A(secret{2}))
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}
