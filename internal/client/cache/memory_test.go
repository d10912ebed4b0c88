package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "images:alice", []byte(`{"images":[]}`), 0))

	v, ok, err := c.Get(ctx, "images:alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"images":[]}`, string(v))

	_, ok, err = c.Get(ctx, "images:bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_StoresCopy(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()
	buf := []byte("abc")

	require.NoError(t, c.Set(ctx, "k", buf, 0))
	buf[0] = 'x'

	v, _, _ := c.Get(ctx, "k")
	assert.Equal(t, "abc", string(v))
}

func TestMemoryCache_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "default", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "short", []byte("2"), 10*time.Second))

	now = now.Add(30 * time.Second)
	_, ok, _ := c.Get(ctx, "short")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "default")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "default")
	assert.False(t, ok)
	assert.Zero(t, c.Len(), "expired entries are dropped on read")
}

func TestMemoryCache_DeleteAndPurge(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, k, []byte(k), 0))
	}

	require.NoError(t, c.Delete(ctx, "a", "missing"))
	assert.Equal(t, 2, c.Len())

	require.NoError(t, c.Purge(ctx))
	assert.Zero(t, c.Len())
}

func TestMemoryCache_Sweep(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Second)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "old", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "new", []byte("2"), time.Hour))

	now = now.Add(time.Minute)
	c.sweep()

	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_JanitorStopsWithContext(t *testing.T) {
	c := NewMemoryCache(time.Nanosecond)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

	c.StartJanitor(ctx, time.Millisecond)

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
}
