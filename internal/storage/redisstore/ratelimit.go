package redisstore

import (
	"context"
	"fmt"
	"time"

	"jobboard-api/internal/storage"

	"github.com/redis/go-redis/v9"
)

// rateLimitScript increments the window counter, starts the window on the
// first hit and returns {allowed, remaining window in ms}.
const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if current > tonumber(ARGV[2]) then
  return {0, ttl}
end
return {1, ttl}
`

// RateLimiter implements storage.RateLimiter with a fixed window per key.
type RateLimiter struct {
	client redis.Scripter
	prefix string
	script *redis.Script
}

var _ storage.RateLimiter = (*RateLimiter)(nil)

func NewRateLimiter(client redis.Scripter, prefix string) *RateLimiter {
	return &RateLimiter{
		client: client,
		prefix: prefix,
		script: redis.NewScript(rateLimitScript),
	}
}

func (l *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	if key == "" || limit <= 0 || window <= 0 {
		return true, 0, nil
	}
	redisKey := key
	if l.prefix != "" {
		redisKey = l.prefix + ":" + key
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	res, err := l.script.Run(ctx, l.client, []string{redisKey}, ttl, limit).Int64Slice()
	if err != nil {
		return true, 0, fmt.Errorf("rate limit script failed: %w", err)
	}
	if len(res) != 2 {
		return true, 0, fmt.Errorf("rate limit script returned %d values", len(res))
	}
	retryAfter := time.Duration(res[1]) * time.Millisecond
	if retryAfter < 0 {
		retryAfter = 0
	}
	return res[0] == 1, retryAfter, nil
}
