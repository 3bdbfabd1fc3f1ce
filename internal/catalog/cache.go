package catalog

import (
	"context"
	"sync"
	"time"
)

// Cache wraps a Repository with a freshness window and manual
// invalidation. A successful remote write invalidates it so the next
// read re-fetches; data past its window is never silently reused —
// a failed refresh surfaces the error instead.
type Cache struct {
	repo Repository
	ttl  time.Duration

	mu        sync.Mutex
	products  []Product
	fetchedAt time.Time
}

func NewCache(repo Repository, ttl time.Duration) *Cache {
	return &Cache{repo: repo, ttl: ttl}
}

func (c *Cache) Load(ctx context.Context) ([]Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.products != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.products, nil
	}

	products, err := c.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.products = products
	c.fetchedAt = time.Now()
	return products, nil
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = nil
}
