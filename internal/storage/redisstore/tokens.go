// Package redisstore keeps short-lived auth state in Redis: the refresh-token
// allow-list and the fixed-window rate limiter counters.
package redisstore

import (
	"context"
	"fmt"
	"time"

	"jobboard-api/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "auth:refresh"

// TokenStore implements storage.TokenStore.
type TokenStore struct {
	client redis.Cmdable
}

var _ storage.TokenStore = (*TokenStore)(nil)

func NewTokenStore(client redis.Cmdable) *TokenStore {
	return &TokenStore{client: client}
}

func refreshKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", refreshKeyPrefix, userID, tokenID)
}

func (s *TokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshKey(userID, tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *TokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, refreshKey(userID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return n == 1, nil
}

// Revoke deletes the key. DEL is atomic, so of two concurrent rotations of the
// same refresh token exactly one sees removed == true.
func (s *TokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Del(ctx, refreshKey(userID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return n == 1, nil
}
