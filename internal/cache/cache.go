// Package cache holds a process-local, time-boxed result cache.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/metrics"
)

// DefaultTTL is how long an entry stays live when no TTL is configured.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
}

// Cache maps keys to values stored with the time they were written. An entry is live while
// now - storedAt < TTL; expired entries are dropped lazily on lookup. There is no capacity bound.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	ttl      time.Duration
	now      func() time.Time
	recorder *metrics.Recorder
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRecorder records hits and misses, labelled by the key prefix before the first ':'.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(c *Cache) {
		c.recorder = rec
	}
}

// New creates a cache. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the live value for key.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	c.recorder.RecordCacheLookup(namespace(key), ok)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, overwriting any previous entry.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetOrLoad returns the live value for key, or calls load and stores its result.
// A load error is returned with whatever value load produced and nothing is stored.
// Concurrent misses on the same key each call load.
func GetOrLoad[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}

func namespace(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
