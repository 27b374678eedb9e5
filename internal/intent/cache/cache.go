// Package cache memoizes utterance to intent mappings.
package cache

import (
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"adhd-task-assistant/internal/model"
)

// DefaultSize is used when a non-positive size is configured.
const DefaultSize = 10000

// Stats is a point-in-time view of cache usage.
type Stats struct {
	Entries  int    `json:"entries"`
	Capacity int    `json:"capacity"`
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
}

// Cache is a bounded, concurrency-safe utterance cache.
type Cache struct {
	entries *lru.Cache[string, model.TaskIntent]
	size    int
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// New creates a cache holding at most size entries.
func New(size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	// lru.New only fails for non-positive sizes.
	entries, _ := lru.New[string, model.TaskIntent](size)
	return &Cache{entries: entries, size: size}
}

// Normalize produces the cache key for an utterance.
func Normalize(utterance string) string {
	return strings.ToLower(strings.TrimSpace(utterance))
}

// Lookup returns a copy of the intent stored under key.
func (c *Cache) Lookup(key string) (model.TaskIntent, bool) {
	v, ok := c.entries.Get(key)
	if !ok {
		c.misses.Add(1)
		return model.TaskIntent{}, false
	}
	c.hits.Add(1)
	return v.Clone(), true
}

// Store records intent under key, replacing any previous entry.
func (c *Cache) Store(key string, intent model.TaskIntent) {
	c.entries.Add(key, intent.Clone())
}

// Clear drops every entry and resets the counters.
func (c *Cache) Clear() {
	c.entries.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Stats reports the current usage.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries:  c.entries.Len(),
		Capacity: c.size,
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
	}
}
