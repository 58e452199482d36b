package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuery struct {
	invalid bool
}

func (q stubQuery) Validate() error {
	if q.invalid {
		return errors.New("bad query")
	}
	return nil
}

type countingCache struct {
	entries map[string]interface{}
	hits    int
	misses  int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: make(map[string]interface{})}
}

func (c *countingCache) Get(ctx context.Context, key string) (interface{}, bool) {
	value, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return value, ok
}

func (c *countingCache) Set(ctx context.Context, key string, value interface{}, ttl int) error {
	c.entries[key] = value
	return nil
}

func TestQueryBus_Dispatch(t *testing.T) {
	bus := NewQueryBus()
	require.NoError(t, bus.Register(stubQuery{}, QueryHandlerFunc(
		func(ctx context.Context, query Query) (interface{}, error) {
			return "handled", nil
		})))

	result, err := bus.Ask(context.Background(), stubQuery{})
	require.NoError(t, err)
	assert.Equal(t, "handled", result)
}

func TestQueryBus_DuplicateRegistration(t *testing.T) {
	bus := NewQueryBus()
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return nil, nil
	})
	require.NoError(t, bus.Register(stubQuery{}, handler))
	assert.Error(t, bus.Register(stubQuery{}, handler))
}

func TestQueryBus_ValidationFailure(t *testing.T) {
	bus := NewQueryBus()
	called := false
	require.NoError(t, bus.Register(stubQuery{}, QueryHandlerFunc(
		func(ctx context.Context, query Query) (interface{}, error) {
			called = true
			return nil, nil
		})))

	_, err := bus.Ask(context.Background(), stubQuery{invalid: true})
	require.Error(t, err)
	assert.False(t, called)
}

func TestQueryBus_NoHandler(t *testing.T) {
	bus := NewQueryBus()
	_, err := bus.Ask(context.Background(), stubQuery{})
	assert.Error(t, err)
}

func TestCachingMiddleware_CachesResults(t *testing.T) {
	cache := newCountingCache()
	executions := 0
	handler := NewCachingMiddleware(cache, 30).Wrap(QueryHandlerFunc(
		func(ctx context.Context, query Query) (interface{}, error) {
			executions++
			return "result", nil
		}))

	for i := 0; i < 3; i++ {
		result, err := handler.Handle(context.Background(), stubQuery{})
		require.NoError(t, err)
		assert.Equal(t, "result", result)
	}

	assert.Equal(t, 1, executions)
	assert.Equal(t, 1, cache.misses)
	assert.Equal(t, 2, cache.hits)
}

func TestCachingMiddleware_DoesNotCacheErrors(t *testing.T) {
	cache := newCountingCache()
	handler := NewCachingMiddleware(cache, 30).Wrap(QueryHandlerFunc(
		func(ctx context.Context, query Query) (interface{}, error) {
			return nil, errors.New("store unavailable")
		}))

	_, err := handler.Handle(context.Background(), stubQuery{})
	require.Error(t, err)
	assert.Empty(t, cache.entries)
}
