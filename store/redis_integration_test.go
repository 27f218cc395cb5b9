//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugfield/store"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)

	ctx := context.Background()
	client := goredis.NewClient(opts)
	require.NoError(t, client.Ping(ctx).Err(), "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.FlushDB(ctx).Err()
		_ = client.Close()
	})

	return client
}

func TestRedis_SlugExists(t *testing.T) {
	ctx := context.Background()
	client := newTestRedisClient(t)

	r := store.NewRedis(client, "slugs:test")
	require.NoError(t, r.Add(ctx, "foo", 1))

	exists, err := r.SlugExists(ctx, "foo", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.SlugExists(ctx, "bar", nil)
	require.NoError(t, err)
	assert.False(t, exists)

	// Identities compare by string rendering, so int 1 matches the stored "1".
	exists, err = r.SlugExists(ctx, "foo", 1)
	require.NoError(t, err)
	assert.False(t, exists, "a record must not collide with itself")

	exists, err = r.SlugExists(ctx, "foo", 2)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRedis_Remove(t *testing.T) {
	ctx := context.Background()
	client := newTestRedisClient(t)

	r := store.NewRedis(client, "slugs:test")
	require.NoError(t, r.Add(ctx, "foo", 1))
	require.NoError(t, r.Remove(ctx, "foo"))

	exists, err := r.SlugExists(ctx, "foo", nil)
	require.NoError(t, err)
	assert.False(t, exists)
}
