package cache

import (
	"context"
	"testing"
	"time"

	"github.com/insurance/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "report", []byte(`[]`), time.Minute))
	got, ok, err := c.Get(ctx, "report")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), got)

	// returned slices are copies
	got[0] = 'x'
	again, _, _ := c.Get(ctx, "report")
	assert.Equal(t, []byte(`[]`), again)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "short", []byte("a"), time.Second))
	require.NoError(t, c.Set(ctx, "forever", []byte("b"), 0))

	now = now.Add(2 * time.Second)

	_, ok, _ := c.Get(ctx, "short")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "forever")
	assert.True(t, ok)
}

func TestMemoryCache_Sweep(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }
	require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Millisecond))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Hour))

	now = now.Add(time.Second)
	c.sweep()
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "report:claims_by_month:LRD", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "report:claims_by_month:USD", []byte("2"), time.Minute))
	require.NoError(t, c.Delete(ctx, "report:claims_by_month:LRD", "report:claims_by_month:USD", "absent"))
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_CloseTwice(t *testing.T) {
	c := NewMemoryCache()
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestNew_FallsBackToMemory(t *testing.T) {
	c := New(config.RedisConfig{Enabled: false}, nil)
	defer c.Close()
	_, ok := c.(*MemoryCache)
	assert.True(t, ok)

	unreachable := New(config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}, nil)
	defer unreachable.Close()
	_, ok = unreachable.(*MemoryCache)
	assert.True(t, ok)
}
