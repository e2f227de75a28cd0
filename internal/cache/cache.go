// Package cache provides a bounded in-memory cache for completion results.
// Suggestions are only useful within one shell session, so nothing persists.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// DefaultCapacity bounds the number of cached suggestions per engine.
const DefaultCapacity = 100

// Entry is one cached completion result.
type Entry struct {
	Suggestion string
	Warning    string
}

// Cache is a capacity-bounded map of request key to suggestion. When the
// capacity is reached the whole cache is dropped; typed command lines churn
// fast enough that LRU bookkeeping is not worth carrying.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	capacity int
}

// New creates a cache with the given capacity; zero or negative means
// DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		entries:  make(map[string]Entry, capacity),
		capacity: capacity,
	}
}

// Key derives the cache key for a completion request.
func Key(buffer, cwd, sessionID string) string {
	h := sha256.New()
	h.Write([]byte(buffer))
	h.Write([]byte{0})
	h.Write([]byte(cwd))
	h.Write([]byte{0})
	h.Write([]byte(sessionID))
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves an entry from the cache.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.entries[key]
	return entry, found
}

// Set stores an entry, dropping everything first if the cache is full.
func (c *Cache) Set(key string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.capacity {
		c.entries = make(map[string]Entry, c.capacity)
	}
	c.entries[key] = entry
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]Entry, c.capacity)
}
