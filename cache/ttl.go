// Package cache provides a small TTL cache used by the content fetch
// clients. The clock is injectable for deterministic tests.
package cache

import (
	"sync"
	"time"
)

type item[T any] struct {
	data     T
	storedAt time.Time
}

// TTL is a thread-safe cache whose entries expire after a fixed duration.
// Expired entries stay retrievable through GetStale until overwritten.
type TTL[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]item[T]
}

// NewTTL creates a cache with the given time-to-live.
func NewTTL[T any](ttl time.Duration) *TTL[T] {
	return &TTL[T]{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]item[T]),
	}
}

// WithClock replaces the cache's clock. Test hook.
func (c *TTL[T]) WithClock(now func() time.Time) *TTL[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

// Get retrieves a value that is still within its TTL.
func (c *TTL[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	it, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if c.now().Sub(it.storedAt) >= c.ttl {
		return zero, false
	}
	return it.data, true
}

// GetStale retrieves a value regardless of its age. Used for the
// stale-on-error fallback.
func (c *TTL[T]) GetStale(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	it, ok := c.items[key]
	if !ok {
		return zero, false
	}
	return it.data, true
}

// Set stores a value, resetting its TTL.
func (c *TTL[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item[T]{data: data, storedAt: c.now()}
}

// Delete removes a key from the cache.
func (c *TTL[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Size returns the current number of items in the cache.
func (c *TTL[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
