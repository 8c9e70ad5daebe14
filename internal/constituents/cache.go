package constituents

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/indexpulse/internal/domain/models"
)

// cachedResolver decorates a Resolver with a per-index TTL cache, so an
// aggregation burst does not hammer the archives host. The cache is an
// explicit entity with a defined refresh policy, owned by whoever wires
// the resolver, not a process-wide side effect.
type cachedResolver struct {
	inner Resolver
	ttl   time.Duration

	mu      sync.Mutex
	entries map[models.IndexKind]cacheEntry
	now     func() time.Time // test seam
}

type cacheEntry struct {
	list      models.ConstituentList
	expiresAt time.Time
}

// NewCachedResolver wraps inner with a TTL cache. A non-positive ttl
// disables caching entirely.
func NewCachedResolver(inner Resolver, ttl time.Duration) Resolver {
	return &cachedResolver{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[models.IndexKind]cacheEntry),
		now:     time.Now,
	}
}

// Resolve returns the cached list while it is fresh, re-resolving on
// expiry. Fallback-sourced lists are cached too: the remote source being
// down is itself a state worth not re-probing on every request, and the
// TTL bounds how long the degradation sticks.
func (c *cachedResolver) Resolve(ctx context.Context, index models.IndexKind) (models.ConstituentList, error) {
	if c.ttl <= 0 {
		return c.inner.Resolve(ctx, index)
	}

	c.mu.Lock()
	if e, ok := c.entries[index]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.list, nil
	}
	c.mu.Unlock()

	list, err := c.inner.Resolve(ctx, index)
	if err != nil {
		return models.ConstituentList{}, err
	}

	c.mu.Lock()
	c.entries[index] = cacheEntry{list: list, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return list, nil
}
