package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

// RevocationStore remembers signed-out session ids until their tokens would
// have expired anyway. Redis makes revocation visible to every instance; with
// no Redis client it falls back to this process only.
type RevocationStore struct {
	rdb   *redis.Client
	local *cache.Cache
}

func NewRevocationStore(rdb *redis.Client) *RevocationStore {
	return &RevocationStore{
		rdb:   rdb,
		local: cache.New(24*time.Hour, 10*time.Minute),
	}
}

func (s *RevocationStore) Revoke(ctx context.Context, sessionId string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	s.local.Set(sessionId, true, ttl)
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedKeyPrefix+sessionId, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke session in redis: %w", err)
	}
	return nil
}

// IsRevoked returns an error when Redis cannot answer; callers treat that as
// "no session".
func (s *RevocationStore) IsRevoked(ctx context.Context, sessionId string) (bool, error) {
	if _, found := s.local.Get(sessionId); found {
		return true, nil
	}
	if s.rdb == nil {
		return false, nil
	}
	err := s.rdb.Get(ctx, revokedKeyPrefix+sessionId).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check session revocation: %w", err)
	}
	return true, nil
}
