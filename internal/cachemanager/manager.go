// Package cachemanager provides a typed, concurrency-safe key/value store
// backed by go-cache. The host keeps its live windows here.
package cachemanager

import (
	"context"
	"errors"
)

// ErrKeyExists is returned by Add when the key already holds a value.
var ErrKeyExists = errors.New("key already exists")

// CacheManager is the store contract: at most one value per key.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Add(ctx context.Context, key K, value V) error
	Delete(ctx context.Context, keys ...K) error
	Items(ctx context.Context) map[K]V
	Count(ctx context.Context) int
	Flush(ctx context.Context) error
}
