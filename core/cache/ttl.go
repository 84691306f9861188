package cache

import (
	"sync"
	"time"
)

// TTLCache is a thread-safe cache with a single expiration clock: one
// timestamp covers the whole cache, and once the TTL elapses every
// entry is stale. The API uses it for day-keyed values like the verse
// of the day, where the key already carries the date and the TTL only
// bounds how long old days linger.
type TTLCache[K comparable, V any] struct {
	mu        sync.RWMutex
	data      map[K]V
	timestamp time.Time
	ttl       time.Duration
}

// NewTTL creates a TTLCache with the given TTL. The cache starts with
// a zero timestamp, so it is expired until the first Set.
func NewTTL[K comparable, V any](ttl time.Duration) *TTLCache[K, V] {
	return &TTLCache[K, V]{
		data: make(map[K]V),
		ttl:  ttl,
	}
}

// Get retrieves a value. It misses when the key is absent or the cache
// has expired.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.expiredLocked() {
		var zero V
		return zero, false
	}

	value, ok := c.data[key]
	return value, ok
}

// Set stores a value and restarts the expiration clock for the whole
// cache.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		c.data = make(map[K]V)
	}
	c.data[key] = value
	c.timestamp = time.Now()
}

// IsExpired reports whether the cache has expired.
func (c *TTLCache[K, V]) IsExpired() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expiredLocked()
}

// expiredLocked must be called with at least a read lock held.
func (c *TTLCache[K, V]) expiredLocked() bool {
	return c.timestamp.IsZero() || time.Since(c.timestamp) >= c.ttl
}

// Invalidate drops all entries and resets the clock, leaving the cache
// expired until the next Set.
func (c *TTLCache[K, V]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[K]V)
	c.timestamp = time.Time{}
}

// Len returns the entry count without checking expiration.
func (c *TTLCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
