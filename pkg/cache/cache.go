// Package cache provides a small in-memory TTL cache with LRU eviction.
// The backend uses it for derived data that is cheap to rebuild, like
// markdown lessons rendered to HTML.
package cache

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned when a key does not exist or has expired.
var ErrNotFound = errors.New("cache: entry not found")

type entry[V any] struct {
	expiresAt time.Time // zero = never expires
	value     V
	key       string
}

// Memory is an in-memory cache with per-entry TTL and LRU eviction when a
// maximum entry count is configured. Expired entries are dropped lazily on
// access. Safe for concurrent use.
type Memory[V any] struct {
	mu         sync.Mutex
	items      map[string]*list.Element
	order      *list.List // front = most recently used
	defaultTTL time.Duration
	maxEntries int
	sf         singleflight.Group
}

// Option configures the cache.
type Option func(*config)

type config struct {
	defaultTTL time.Duration
	maxEntries int
}

// WithDefaultTTL sets the expiration used when Set is called with a zero
// TTL. Default: one hour.
func WithDefaultTTL(d time.Duration) Option {
	return func(c *config) { c.defaultTTL = d }
}

// WithMaxEntries caps the cache size; the least recently used entry is
// evicted at capacity. Zero means unlimited.
func WithMaxEntries(n int) Option {
	return func(c *config) { c.maxEntries = n }
}

// NewMemory creates an in-memory cache.
func NewMemory[V any](opts ...Option) *Memory[V] {
	cfg := &config{defaultTTL: time.Hour}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Memory[V]{
		items:      make(map[string]*list.Element),
		order:      list.New(),
		defaultTTL: cfg.defaultTTL,
		maxEntries: cfg.maxEntries,
	}
}

// Get retrieves a value, marking it recently used.
// Returns ErrNotFound for missing or expired keys.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	elem, ok := m.items[key]
	if !ok {
		return zero, ErrNotFound
	}
	e := elem.Value.(*entry[V])
	if expired(e) {
		m.remove(elem)
		return zero, ErrNotFound
	}
	m.order.MoveToFront(elem)
	return e.value, nil
}

// Set stores a value. A zero ttl uses the default; a negative ttl means the
// entry never expires.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl == 0 {
		ttl = m.defaultTTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if elem, ok := m.items[key]; ok {
		e := elem.Value.(*entry[V])
		e.value = value
		e.expiresAt = expiresAt
		m.order.MoveToFront(elem)
		return
	}

	if m.maxEntries > 0 && len(m.items) >= m.maxEntries {
		if oldest := m.order.Back(); oldest != nil {
			m.remove(oldest)
		}
	}
	m.items[key] = m.order.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
}

// Delete removes a key. Deleting a missing key is a no-op.
func (m *Memory[V]) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if elem, ok := m.items[key]; ok {
		m.remove(elem)
	}
}

// Len returns the number of entries, including not-yet-collected expired ones.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// GetOrSet returns the cached value for key, or computes it with fn on a
// miss. Concurrent misses for the same key run fn once (singleflight).
func (m *Memory[V]) GetOrSet(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) (V, error)) (V, error) {
	if v, err := m.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := m.sf.Do(key, func() (any, error) {
		val, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		m.Set(ctx, key, val, ttl)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// remove deletes an element. Callers hold m.mu.
func (m *Memory[V]) remove(elem *list.Element) {
	e := elem.Value.(*entry[V])
	delete(m.items, e.key)
	m.order.Remove(elem)
}

func expired[V any](e *entry[V]) bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}
