package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getTestRedis connects to TEST_REDIS_URL (host:port) or skips.
func getTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_URL")
	if addr == "" {
		t.Skip("TEST_REDIS_URL not set, skipping Redis tests")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, rdb.Ping(ctx).Err())
	require.NoError(t, rdb.FlushDB(ctx).Err())
	t.Cleanup(func() {
		_ = rdb.FlushDB(context.Background()).Err()
		_ = rdb.Close()
	})
	return rdb
}

func TestTokenStore_SaveExistsRevoke(t *testing.T) {
	rdb := getTestRedis(t)
	store := NewTokenStore(rdb)
	ctx := context.Background()
	userID := uuid.New()
	jti := uuid.NewString()

	require.NoError(t, store.Save(ctx, userID, jti, time.Minute))

	ok, err := store.Exists(ctx, userID, jti)
	require.NoError(t, err)
	assert.True(t, ok)

	removed, err := store.Revoke(ctx, userID, jti)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Revoke(ctx, userID, jti)
	require.NoError(t, err)
	assert.False(t, removed, "second revoke must not succeed")

	ok, err = store.Exists(ctx, userID, jti)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRateLimiter_Window(t *testing.T) {
	rdb := getTestRedis(t)
	limiter := NewRateLimiter(rdb, "test")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(ctx, "login:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "hit %d", i+1)
	}

	allowed, retryAfter, err := limiter.Allow(ctx, "login:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))

	allowed, _, err = limiter.Allow(ctx, "login:5.6.7.8", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "other keys have their own window")
}

func TestRateLimiter_DisabledLimit(t *testing.T) {
	limiter := NewRateLimiter(nil, "test")
	allowed, _, err := limiter.Allow(context.Background(), "k", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}
