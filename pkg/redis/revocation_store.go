package redis

import (
	"context"
	"time"
)

const revokedTokenPrefix = "revoked_jwt:"

var (
	setRevokedValue = Set
	existsRevoked   = Exists
)

// RevocationStore remembers token ids that were logged out before they expired.
type RevocationStore struct{}

// NewRevocationStore creates a revocation store backed by the shared client.
func NewRevocationStore() *RevocationStore {
	return &RevocationStore{}
}

// Revoke marks jti as revoked for ttl. A non-positive ttl means the token has
// already expired and nothing is stored.
func (s *RevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return setRevokedValue(ctx, revokedTokenPrefix+jti, "1", ttl)
}

// IsRevoked reports whether jti was revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return existsRevoked(ctx, revokedTokenPrefix+jti)
}
