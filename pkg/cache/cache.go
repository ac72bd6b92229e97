package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Key is a structured cache key. Invalidation matches on the ExperienceID
// field exactly, never on a serialized representation of the key.
type Key struct {
	ExperienceID uuid.UUID
	Date         string
	Extra        string
}

type entry[V any] struct {
	key       Key
	value     V
	expiresAt time.Time
}

// Cache is a fixed-capacity, TTL-expiring key/value store. Eviction on
// overflow drops the oldest-inserted live entry (approximate FIFO, not
// LRU). Safe for concurrent use; operations never block beyond map access.
type Cache[V any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	entries  map[Key]entry[V]
	order    []Key
}

func New[V any](capacity int, ttl time.Duration) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[V]{
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[Key]entry[V], capacity),
	}
}

// Get returns the cached value for key, treating expired entries as misses.
func (c *Cache[V]) Get(key Key) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}

	return e.value, true
}

// Set stores value under key, evicting the oldest-inserted entry when the
// cache is full.
func (c *Cache[V]) Set(key Key, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	c.entries[key] = entry[V]{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.order = append(c.order, key)

	if len(c.order) > c.capacity*4 {
		c.compactOrder()
	}
}

// InvalidateExperience drops every entry whose key references the given
// experience. Returns the number of entries removed.
func (c *Cache[V]) InvalidateExperience(experienceID uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if key.ExperienceID == experienceID {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored entries, including any not yet
// expired-on-read.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// compactOrder rebuilds the insertion order, dropping slots for removed
// entries and keeping only the earliest slot per live key.
func (c *Cache[V]) compactOrder() {
	seen := make(map[Key]bool, len(c.entries))
	kept := c.order[:0]
	for _, k := range c.order {
		if _, ok := c.entries[k]; ok && !seen[k] {
			seen[k] = true
			kept = append(kept, k)
		}
	}
	c.order = kept
}

// evictOldest walks the insertion order until it finds a key that still
// maps to a live entry. Stale slots left behind by overwrites and
// invalidations are skipped and discarded.
func (c *Cache[V]) evictOldest() {
	for len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		if _, ok := c.entries[oldest]; ok {
			delete(c.entries, oldest)
			return
		}
	}
}
