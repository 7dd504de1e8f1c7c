package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCacheLocalSetGet(t *testing.T) {
	c, err := NewViewCache("", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()

	assert.Nil(t, c.Get(ctx, ViewBills), "empty cache misses")

	c.Set(ctx, ViewBills, []byte(`[{"billId":1}]`))
	assert.Equal(t, []byte(`[{"billId":1}]`), c.Get(ctx, ViewBills))

	// Collections are independent
	assert.Nil(t, c.Get(ctx, ViewPayments))
}

func TestViewCacheInvalidate(t *testing.T) {
	c, err := NewViewCache("", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	c.Set(ctx, ViewBills, []byte("bills"))
	c.Set(ctx, ViewPayments, []byte("payments"))
	c.Set(ctx, ViewEvents, []byte("events"))

	c.Invalidate(ctx, ViewBills, ViewPayments)

	assert.Nil(t, c.Get(ctx, ViewBills))
	assert.Nil(t, c.Get(ctx, ViewPayments))
	assert.Equal(t, []byte("events"), c.Get(ctx, ViewEvents))
}

func TestViewCacheTTLExpiry(t *testing.T) {
	c, err := NewViewCache("", 10*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	c.Set(ctx, ViewResidents, []byte("stale"))

	time.Sleep(25 * time.Millisecond)
	assert.Nil(t, c.Get(ctx, ViewResidents), "entries expire after the TTL backstop")
}

func TestViewCacheRejectsBadRedisURL(t *testing.T) {
	_, err := NewViewCache("not-a-redis-url", time.Minute)
	assert.Error(t, err)
}
