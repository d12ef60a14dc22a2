package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/globaledge/api/utils/cache"
)

// DenylistService handles JWT token revocation. Revoked JTIs live in Redis
// with a TTL matching the token's own expiry, so the set cleans itself.
type DenylistService struct {
	redisCache *cache.RedisCache
}

// NewDenylistService creates a new denylist service
func NewDenylistService(redisCache *cache.RedisCache) *DenylistService {
	return &DenylistService{redisCache: redisCache}
}

func denylistKey(jti string) string {
	return fmt.Sprintf("token_denylist:%s", jti)
}

// RevokeToken marks a token's JTI as revoked until the token would expire anyway.
func (s *DenylistService) RevokeToken(ctx context.Context, jti string, expiresAt time.Time, reason string) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}
	return s.redisCache.Set(ctx, denylistKey(jti), reason, ttl)
}

// IsTokenRevoked checks if a token's JTI is in the denylist
func (s *DenylistService) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return s.redisCache.Exists(ctx, denylistKey(jti))
}
