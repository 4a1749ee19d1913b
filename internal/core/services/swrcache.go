package services

import (
	"context"
	"sync"
	"time"

	"github.com/openlexica/lexa-cli/internal/logger"
)

// CacheConfig tunes the stale-while-revalidate cache.
type CacheConfig struct {
	// RevalidateOnRead triggers a background refresh whenever a cached
	// value is read. The stale value stays visible until the refresh
	// completes.
	RevalidateOnRead bool

	// AssumeOnline is the offline-first policy switch: the cache treats
	// the environment as always online and always foreground-visible
	// and never pauses revalidation on connectivity or visibility
	// signals. This is a deliberate configuration choice, not
	// environment detection.
	AssumeOnline bool
}

// DefaultCacheConfig is the configuration used by the search pipeline.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		RevalidateOnRead: true,
		AssumeOnline:     true,
	}
}

// Loader produces the value for a cache key.
type Loader[T any] func(ctx context.Context) (T, error)

// Snapshot is the caller-visible view of a cache entry.
type Snapshot[T any] struct {
	// Value is the cached value; meaningful only when Found is true.
	Value T

	// Found reports whether a value has ever been stored for the key.
	Found bool

	// Revalidating reports whether a fetch is in flight for the key.
	Revalidating bool
}

// cacheEntry is the per-key state. At most one fetch is in flight per
// entry at any time.
type cacheEntry[T any] struct {
	value     T
	found     bool
	inflight  bool
	fetchErr  error
	fetchedAt time.Time
}

// Cache is a keyed, in-memory, stale-while-revalidate async result cache
// with per-key request coalescing. It is process-lifetime only: it holds
// no durable state and starts empty on every process start. Entries are
// never evicted by size.
type Cache[T any] struct {
	cfg CacheConfig

	mu      sync.Mutex
	entries map[string]*cacheEntry[T]
}

// NewCache creates an empty cache.
func NewCache[T any](cfg CacheConfig) *Cache[T] {
	return &Cache[T]{
		cfg:     cfg,
		entries: make(map[string]*cacheEntry[T]),
	}
}

// Get returns the current snapshot for key and, when needed, starts a
// background fetch via load.
//
// The first call for a key returns {Found: false, Revalidating: true} and
// begins the fetch. Calls arriving while a fetch is in flight never start
// a second one; they all observe the same operation's eventual result.
// Once a value is cached it is returned synchronously, with a background
// revalidation when the configuration asks for one.
//
// A failed load never replaces the cached value and does not poison the
// entry: the error is handed to exactly one subsequent Get of that key
// and then cleared.
func (c *Cache[T]) Get(ctx context.Context, key string, load Loader[T]) (Snapshot[T], error) {
	c.mu.Lock()

	entry, ok := c.entries[key]
	if !ok {
		entry = &cacheEntry[T]{}
		c.entries[key] = entry
	}

	err := entry.fetchErr
	entry.fetchErr = nil

	start := false
	if !entry.inflight && (!entry.found || c.cfg.RevalidateOnRead) {
		entry.inflight = true
		start = true
	}

	snap := Snapshot[T]{
		Value:        entry.value,
		Found:        entry.found,
		Revalidating: entry.inflight,
	}
	c.mu.Unlock()

	if start {
		// An in-flight fetch is never cancelled once started; its
		// result is kept or discarded depending on whether the key is
		// still present when it lands.
		go c.fetch(context.WithoutCancel(ctx), key, entry, load)
	}

	return snap, err
}

// fetch runs the loader and publishes its result to the entry.
func (c *Cache[T]) fetch(ctx context.Context, key string, entry *cacheEntry[T], load Loader[T]) {
	value, err := load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry.inflight = false
	if err != nil {
		logger.Warn("Cache load failed for %q: %v", key, err)
		entry.fetchErr = err
		return
	}

	entry.value = value
	entry.found = true
	entry.fetchedAt = time.Now()
}

// Peek returns the snapshot for key without triggering any fetch.
func (c *Cache[T]) Peek(key string) Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return Snapshot[T]{}
	}
	return Snapshot[T]{
		Value:        entry.value,
		Found:        entry.found,
		Revalidating: entry.inflight,
	}
}

// Invalidate empties the cache. In-flight fetches finish against their
// orphaned entries and are discarded. Used after a dataset replacement.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry[T])
	logger.Debug("Cache invalidated")
}

// Len returns the number of cached keys.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
