package catalog

import (
	"context"
	"sync"
	"time"

	"example.com/recommendation/internal/domain"
)

// Cached wraps a source with a TTL so remote catalogs are not re-fetched on
// every recommendation. A zero TTL caches forever until Refresh is called.
type Cached struct {
	source domain.Source
	ttl    time.Duration

	// refreshMu serializes reloads so concurrent Load calls on an expired
	// cache trigger a single fetch from the underlying source.
	refreshMu sync.Mutex

	mu       sync.RWMutex
	entries  []domain.Exercise
	loadedAt time.Time
}

// NewCached constructs a Cached source.
func NewCached(source domain.Source, ttl time.Duration) *Cached {
	return &Cached{source: source, ttl: ttl}
}

// Load returns the cached catalog, reloading from the underlying source
// when the TTL has lapsed or nothing was loaded yet.
func (c *Cached) Load(ctx context.Context) ([]domain.Exercise, error) {
	if entries, ok := c.cached(); ok {
		return entries, nil
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if entries, ok := c.cached(); ok {
		return entries, nil
	}
	if err := c.refresh(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyLocked(), nil
}

// Refresh reloads from the underlying source immediately.
func (c *Cached) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	return c.refresh(ctx)
}

func (c *Cached) refresh(ctx context.Context) error {
	entries, err := c.source.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries = entries
	c.loadedAt = time.Now()
	c.mu.Unlock()
	return nil
}

func (c *Cached) cached() ([]domain.Exercise, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.loadedAt.IsZero() || (c.ttl > 0 && time.Since(c.loadedAt) >= c.ttl) {
		return nil, false
	}
	return c.copyLocked(), true
}

func (c *Cached) copyLocked() []domain.Exercise {
	out := make([]domain.Exercise, len(c.entries))
	copy(out, c.entries)
	return out
}
