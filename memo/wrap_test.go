package memo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap1(t *testing.T) {
	calls := 0
	parse := Wrap1(func(s string) (int, error) {
		calls++
		return strconv.Atoi(s)
	}, Config{Capacity: 4})

	n, err := parse("42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	n, err = parse("42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t, 1, calls)

	_, err = parse("nope")
	assert.Error(t, err)
	_, err = parse("nope")
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestWrap2(t *testing.T) {
	calls := 0
	add := Wrap2(func(a, b int) (int, error) {
		calls++
		return a + b, nil
	}, Config{Capacity: 4, KeyStrategy: KeySerialized})
	for i := 0; i < 3; i++ {
		sum, err := add(2, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, sum)
	}
	sum, err := add(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, sum)
	assert.Equal(t, 2, calls)
}

func TestWrapArgs(t *testing.T) {
	calls := 0
	greet := Wrap(func(args Args) (string, error) {
		calls++
		name, _ := args.Positional[0].(string)
		if loud, _ := args.Named["loud"].(bool); loud {
			return "HELLO " + name, nil
		}
		return "hello " + name, nil
	}, Config{Capacity: 8})

	out, err := greet(A("bob").With("loud", true))
	require.NoError(t, err)
	assert.Equal(t, "HELLO bob", out)
	out, err = greet(A("bob"))
	require.NoError(t, err)
	assert.Equal(t, "hello bob", out)
	greet(A("bob").With("loud", true))
	assert.Equal(t, 2, calls)
}

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

func TestWrapPure1(t *testing.T) {
	calls := 0
	f := WrapPure1(func(n int) int {
		calls++
		return fib(n)
	}, Config{Capacity: 2})
	assert.Equal(t, 55, f(10))
	assert.Equal(t, 55, f(10))
	assert.Equal(t, 1, calls)
}

func TestWrapScoped1(t *testing.T) {
	calls := 0
	expectedErr := errors.New("bad input")
	upper := WrapScoped1(func(ctx context.Context, s string) (string, error) {
		calls++
		if s == "" {
			return "", expectedErr
		}
		return s + "!", nil
	}, Config{Capacity: 4})

	ctx := WithScope(context.Background(), NewScope())
	for i := 0; i < 3; i++ {
		out, err := upper(ctx, "hi")
		require.NoError(t, err)
		assert.Equal(t, "hi!", out)
	}
	assert.Equal(t, 1, calls)

	_, err := upper(ctx, "")
	assert.Same(t, expectedErr, err)
	assert.Equal(t, 2, calls)
}
