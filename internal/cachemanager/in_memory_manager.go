package cachemanager

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/renflow/renflow/internal/log"
)

// DefaultCleanupInterval only matters for entries stored with a TTL. The
// host stores windows without expiration.
const DefaultCleanupInterval = 30 * time.Minute

// NewInMemoryCacheManager creates a store whose entries never expire.
func NewInMemoryCacheManager[K ~string, V any](useCase string) *InMemoryCacheManager[K, V] {
	return NewInMemoryCacheManagerWithExpiration[K, V](useCase, gocache.NoExpiration, DefaultCleanupInterval)
}

// NewInMemoryCacheManagerWithExpiration creates a store with a default TTL.
func NewInMemoryCacheManagerWithExpiration[K ~string, V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCacheManager[K, V] {
	return &InMemoryCacheManager[K, V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// InMemoryCacheManager is the go-cache implementation of CacheManager.
type InMemoryCacheManager[K ~string, V any] struct {
	useCase string
	cache   *gocache.Cache
}

var _ CacheManager[string, int] = (*InMemoryCacheManager[string, int])(nil)

// Get retrieves a value by key.
func (c *InMemoryCacheManager[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zeroValue V

	value, found := c.cache.Get(string(key))
	if !found {
		return zeroValue, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "store", c.useCase, "key", key)
		return zeroValue, false
	}

	return v, true
}

// Add stores value under key only if the key is free. go-cache performs the
// check and the insert under one lock, so two concurrent Adds for the same
// key cannot both succeed.
func (c *InMemoryCacheManager[K, V]) Add(ctx context.Context, key K, value V) error {
	if err := c.cache.Add(string(key), value, gocache.DefaultExpiration); err != nil {
		return fmt.Errorf("%s %q: %w", c.useCase, string(key), ErrKeyExists)
	}
	log.Debug(log.CatCache, "stored", "store", c.useCase, "key", key)
	return nil
}

// Delete removes values by key. Missing keys are ignored.
func (c *InMemoryCacheManager[K, V]) Delete(ctx context.Context, keys ...K) error {
	for _, key := range keys {
		c.cache.Delete(string(key))
	}
	return nil
}

// Items returns a snapshot of all unexpired entries.
func (c *InMemoryCacheManager[K, V]) Items(ctx context.Context) map[K]V {
	items := c.cache.Items()
	out := make(map[K]V, len(items))
	for k, item := range items {
		v, ok := item.Object.(V)
		if !ok {
			continue
		}
		out[K(k)] = v
	}
	return out
}

// Count returns the number of stored entries.
func (c *InMemoryCacheManager[K, V]) Count(ctx context.Context) int {
	return c.cache.ItemCount()
}

// Flush removes every entry.
func (c *InMemoryCacheManager[K, V]) Flush(ctx context.Context) error {
	c.cache.Flush()
	return nil
}
