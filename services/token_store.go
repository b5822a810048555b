package services

import (
	"context"
	"time"
)

// SnapshotCache is the slice of the cache package the services need. A nil
// cache disables caching entirely; every operation then falls through to the
// database.
type SnapshotCache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
	SetFlag(ctx context.Context, key string, expiration time.Duration) error
	HasFlag(ctx context.Context, key string) (bool, error)
}

// TokenStore tracks revoked session tokens by jti. Revocation is what makes
// sign-out authoritative: a token revoked here is dead even if a concurrent
// refresh is still in flight.
type TokenStore interface {
	Revoke(jti string, until time.Time) error
	IsRevoked(jti string) (bool, error)
}

type tokenStore struct {
	cache SnapshotCache
}

func NewTokenStore(cache SnapshotCache) TokenStore {
	return &tokenStore{cache: cache}
}

func revokedKey(jti string) string {
	return "token:revoked:" + jti
}

func (s *tokenStore) Revoke(jti string, until time.Time) error {
	if s.cache == nil {
		return nil
	}
	ttl := time.Until(until)
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}
	return s.cache.SetFlag(context.Background(), revokedKey(jti), ttl)
}

func (s *tokenStore) IsRevoked(jti string) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	return s.cache.HasFlag(context.Background(), revokedKey(jti))
}
