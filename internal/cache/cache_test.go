package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) *Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, "test:")
}

func TestCache_SetGet(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	type stats struct {
		Total int64 `json:"total"`
	}

	c.Set(ctx, "dashboard", stats{Total: 42}, time.Minute)

	var got stats
	err := c.Get(ctx, "dashboard", &got)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Total)
}

func TestCache_Miss(t *testing.T) {
	c := setupCache(t)

	var dest map[string]int64
	err := c.Get(context.Background(), "absent", &dest)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCache_Invalidate(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	c.Set(ctx, "k", 1, time.Minute)
	c.Invalidate(ctx, "k")

	var dest int
	err := c.Get(ctx, "k", &dest)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCache_NilSafe(t *testing.T) {
	var c *Cache

	var dest int
	assert.ErrorIs(t, c.Get(context.Background(), "k", &dest), ErrMiss)
	// Set and Invalidate on a nil cache must be no-ops.
	c.Set(context.Background(), "k", 1, time.Minute)
	c.Invalidate(context.Background(), "k")
}
