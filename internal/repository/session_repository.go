package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusconnect/backend/internal/config"
)

// SessionRepository tracks live session token IDs in Redis so that logout
// revokes a token before it expires.
type SessionRepository struct {
	rdb *redis.Client
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func (r *SessionRepository) Save(ctx context.Context, tokenID, subject string, ttl time.Duration) error {
	return r.rdb.Set(ctx, config.CacheKey.SessionKey(tokenID), subject, ttl).Err()
}

func (r *SessionRepository) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, config.CacheKey.SessionKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SessionRepository) Delete(ctx context.Context, tokenID string) error {
	return r.rdb.Del(ctx, config.CacheKey.SessionKey(tokenID)).Err()
}
