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

type payload struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func newTestCache(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisWithClient(client, time.Minute, nil), mr
}

func TestRedis_SetGetJSON(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "recs:a:10", payload{Name: "go", Score: 81.5}, 0))
	assert.Equal(t, time.Minute, mr.TTL("recs:a:10"))

	var got payload
	ok, err := c.GetJSON(ctx, "recs:a:10", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload{Name: "go", Score: 81.5}, got)

	mr.FastForward(2 * time.Minute)
	ok, err = c.GetJSON(ctx, "recs:a:10", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_GetJSON_Miss(t *testing.T) {
	c, _ := newTestCache(t)
	var got payload
	ok, err := c.GetJSON(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_DeleteByPattern(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("recs:a:10", "{}"))
	require.NoError(t, mr.Set("recs:a:20", "{}"))
	require.NoError(t, mr.Set("recs:b:10", "{}"))

	require.NoError(t, c.DeleteByPattern(ctx, "recs:a:*"))
	assert.False(t, mr.Exists("recs:a:10"))
	assert.False(t, mr.Exists("recs:a:20"))
	assert.True(t, mr.Exists("recs:b:10"))

	require.NoError(t, c.DeleteByPattern(ctx, "recs:b:10"))
	assert.False(t, mr.Exists("recs:b:10"))
	assert.NoError(t, c.DeleteByPattern(ctx, "  "))
}

func TestRedis_UnavailableDegradesToMiss(t *testing.T) {
	var c *Redis
	ctx := context.Background()

	ok, err := c.GetJSON(ctx, "k", &payload{})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.SetJSON(ctx, "k", payload{}, time.Second))
	assert.NoError(t, c.Close())
	assert.Error(t, c.Ping(ctx))
}

func TestRedis_ServerDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	err := c.SetJSON(context.Background(), "k", payload{}, time.Second)
	assert.Error(t, err)
	assert.True(t, c.warnedUnavailable.Load())
}
