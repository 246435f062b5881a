package icons

import (
	"sync"
	"time"
)

const defaultCacheTTL = 5 * time.Minute

// cacheKey identifies one materialization: the result depends on the
// flavor name, the theme it was styled against, and the terminal's color
// capability.
type cacheKey struct {
	flavor    string
	theme     string
	trueColor bool
}

// cacheEntry holds a materialized flavor with its expiration time.
type cacheEntry struct {
	flavor    *Flavor
	expiresAt time.Time
}

// Cache is a thread-safe in-memory cache for materialized flavors.
// Entries expire after the configured TTL.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[cacheKey]cacheEntry
}

// NewCache creates a new Cache with the given TTL. If ttl is zero or
// negative, the default of 5 minutes is used.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Cache{
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
	}
}

// Get returns the cached flavor for the given key and true if found and
// not expired. A copy is returned to prevent mutation of cached data.
func (c *Cache) Get(name, theme string, trueColor bool) (*Flavor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[cacheKey{flavor: name, theme: theme, trueColor: trueColor}]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.flavor.clone(), true
}

// Set stores a materialized flavor. The flavor is copied to prevent
// external mutation of cached values.
func (c *Cache) Set(name, theme string, trueColor bool, fl *Flavor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey{flavor: name, theme: theme, trueColor: trueColor}] = cacheEntry{
		flavor:    fl.clone(),
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[cacheKey]cacheEntry)
}
