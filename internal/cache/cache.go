package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Package cache provides keyed TTL caches with in-flight de-duplication.
// Each cache guarantees that for any key at most one compute runs at a time
// across all concurrent callers; all callers for the same key observe the
// same eventual result. Failed computes are never cached.

// Clock returns the current time. Injected so expiry can be tested
// deterministically.
type Clock func() time.Time

type entry[T any] struct {
	value    T
	storedAt time.Time
}

// Cache is a keyed TTL cache safe for concurrent use. A stored value is
// valid iff now - storedAt < ttl. Concurrent GetOrCompute calls for the
// same key share a single compute via singleflight.
type Cache[T any] struct {
	ttl     time.Duration
	now     Clock
	scope   string
	metrics *Metrics

	mu      sync.RWMutex
	entries map[string]entry[T]
	group   singleflight.Group
}

// Option configures a Cache.
type Option[T any] func(*Cache[T])

// WithClock overrides the time source, primarily for tests.
func WithClock[T any](now Clock) Option[T] {
	return func(c *Cache[T]) { c.now = now }
}

// WithMetrics attaches hit/miss/coalesced counters under the given scope label.
func WithMetrics[T any](m *Metrics, scope string) Option[T] {
	return func(c *Cache[T]) {
		c.metrics = m
		c.scope = scope
	}
}

// New creates an empty cache whose entries expire after ttl.
func New[T any](ttl time.Duration, opts ...Option[T]) *Cache[T] {
	c := &Cache[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[T]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key if present and unexpired.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return e.value, true
}

// GetStale returns the value for key regardless of expiry. Used by the
// degraded-fallback path: a stale folder list beats no folder list.
func (c *Cache[T]) GetStale(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the current timestamp.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	c.entries[key] = entry[T]{value: value, storedAt: c.now()}
	c.mu.Unlock()
}

// GetOrCompute returns the cached value for key, or runs compute to produce
// it. At most one compute runs per key at a time; concurrent callers await
// the same result. On success the value is stored with the current
// timestamp. Compute errors propagate to every waiting caller and leave the
// cache untouched, so the next call retries fresh.
func (c *Cache[T]) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		c.count("hit")
		return v, nil
	}
	c.count("miss")

	v, err, shared := c.group.Do(key, func() (any, error) {
		// A caller that queued behind an in-flight compute may find the
		// value already stored by the time its turn comes.
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		// The compute serves every coalesced caller, not just the one that
		// triggered it: cancellation is stripped so one caller hanging up
		// cannot fail the others or leave the result uncached. Context
		// values (trace propagation) pass through.
		val, err := compute(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.Set(key, val)
		return val, nil
	})
	if shared {
		c.count("coalesced")
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate removes one key.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidateAll removes every entry.
func (c *Cache[T]) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry[T])
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[T]) count(outcome string) {
	if c.metrics != nil {
		c.metrics.requests.WithLabelValues(c.scope, outcome).Inc()
	}
}
