// Package cache is the keyed query cache in front of the remote
// accessors. Reads run through Fetch, which serves the stored payload or
// runs the fetch function and stores its result; mutations run through
// Mutate, which invalidates the named key prefixes only after the write
// succeeds so the next read refetches server-consistent state.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by a Store when a key has no live entry.
var ErrMiss = errors.New("cache: miss")

// Store is the backing key-value store. A Cache with a nil Store is
// valid and degrades to straight passthrough.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

type Cache struct {
	store Store
}

func New(store Store) *Cache {
	return &Cache{store: store}
}

// Enabled reports whether a backing store is attached.
func (c *Cache) Enabled() bool {
	return c != nil && c.store != nil
}

// Fetch returns the payload stored under key, or runs fn and stores its
// result. The second return reports whether the payload came from the
// cache. Store failures never fail the read; the fetched payload is
// returned and the cache is simply skipped.
func (c *Cache) Fetch(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) ([]byte, error)) ([]byte, bool, error) {
	if c.Enabled() {
		if cached, err := c.store.Get(ctx, key); err == nil {
			return cached, true, nil
		}
	}

	payload, err := fn(ctx)
	if err != nil {
		return nil, false, err
	}

	if c.Enabled() {
		_ = c.store.Set(ctx, key, payload, ttl)
	}
	return payload, false, nil
}

// Invalidate drops every key under the given prefixes.
func (c *Cache) Invalidate(ctx context.Context, prefixes ...string) {
	if !c.Enabled() {
		return
	}
	for _, prefix := range prefixes {
		_ = c.store.DeleteByPrefix(ctx, prefix)
	}
}

// Mutate runs the write and, only on success, invalidates the named
// prefixes. A failed write leaves the cache untouched.
func (c *Cache) Mutate(ctx context.Context, fn func(ctx context.Context) error, prefixes ...string) error {
	if err := fn(ctx); err != nil {
		return err
	}
	c.Invalidate(ctx, prefixes...)
	return nil
}
