// Package cache holds short-lived in-process caches.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"panchayat.backend/internal/domain/entities"
)

const identityKeyPrefix = "identity"

// IdentityCache keeps resolved identities for a short time so that every
// authenticated request does not reload the user and its profile.
type IdentityCache struct {
	store *gocache.Cache
}

// NewIdentityCache creates a cache whose entries expire after ttl. A ttl of
// zero or less disables caching.
func NewIdentityCache(ttl time.Duration) *IdentityCache {
	if ttl <= 0 {
		return &IdentityCache{}
	}
	return &IdentityCache{store: gocache.New(ttl, 2*ttl)}
}

func (c *IdentityCache) Get(username string) (*entities.Identity, bool) {
	if c == nil || c.store == nil {
		return nil, false
	}
	v, ok := c.store.Get(key(username))
	if !ok {
		return nil, false
	}
	id, ok := v.(*entities.Identity)
	return id, ok
}

func (c *IdentityCache) Set(username string, id *entities.Identity) {
	if c == nil || c.store == nil || id == nil {
		return
	}
	c.store.SetDefault(key(username), id)
}

// Delete evicts username. Call it whenever the user or its profile changes.
func (c *IdentityCache) Delete(username string) {
	if c == nil || c.store == nil {
		return
	}
	c.store.Delete(key(username))
}

func (c *IdentityCache) Flush() {
	if c == nil || c.store == nil {
		return
	}
	c.store.Flush()
}

func key(username string) string {
	return identityKeyPrefix + ":" + username
}
