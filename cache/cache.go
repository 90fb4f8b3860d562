package cache

import (
	"energy-server/entities"
	"sync"
)

// LatestReadingCache keeps the most recent reading per user in memory.
// It is written through on every insert, so it can serve the dashboard's
// "current power" lookup without a round trip to the database. The
// database stays the source of truth; a cold cache just misses.
type LatestReadingCache struct {
	mu     sync.RWMutex
	latest map[string]entities.Reading // keyed by user ID
	hits   uint64
	misses uint64
}

func NewLatestReadingCache() *LatestReadingCache {
	return &LatestReadingCache{
		latest: make(map[string]entities.Reading),
	}
}

// Put stores a reading if it is at least as new as what is cached.
func (c *LatestReadingCache) Put(reading entities.Reading) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.latest[reading.UserID]
	if ok && current.CreatedAt.After(reading.CreatedAt) {
		return
	}
	c.latest[reading.UserID] = reading
}

// Get returns the cached latest reading for a user, if any.
func (c *LatestReadingCache) Get(userID string) (entities.Reading, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	reading, ok := c.latest[userID]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return reading, ok
}

// Stats returns counters for the cache stats endpoint.
func (c *LatestReadingCache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"users_cached": len(c.latest),
		"hits":         c.hits,
		"misses":       c.misses,
	}
}
