package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
)

var _ Cache = (*MemoryCache)(nil)

// MemoryCache is the in-process fallback used when no redis instance is
// available, typically local development.
type MemoryCache struct {
	store *ristretto.Cache
}

func NewMemoryCache() (*MemoryCache, error) {
	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	store.Wait()

	return &MemoryCache{store: store}, nil
}

func (c *MemoryCache) Get(ctx context.Context, key string) (any, bool) {
	return c.store.Get(key)
}

func (c *MemoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	ok := c.store.SetWithTTL(key, value, 1, ttl)
	c.store.Wait()
	return ok
}

func (c *MemoryCache) Delete(ctx context.Context, key string) {
	c.store.Del(key)
}

func (c *MemoryCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err := loader()
	if err != nil {
		return nil, err
	}

	c.Set(ctx, key, value, ttl)
	return value, nil
}
