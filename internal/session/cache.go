package session

import (
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is an in-memory Registry of recently opened sessions. Entries are
// bounded by capacity and expire after ttl.
type Cache struct {
	lru *expirable.LRU[Identity, time.Time]
	log *slog.Logger
}

var _ Registry = (*Cache)(nil)

// NewCache returns a cache holding at most capacity identities (0 means
// unbounded). A zero ttl keeps entries until they are evicted by capacity.
// A positive ttl starts an expiry goroutine that never exits, so build one
// cache per process and share it.
func NewCache(capacity int, ttl time.Duration, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{log: logger.With("component", "session-cache")}
	c.lru = expirable.NewLRU[Identity, time.Time](capacity, func(id Identity, _ time.Time) {
		c.log.Debug("Session dropped.", "session", id.String())
	}, ttl)
	return c
}

// Add records a session for id, refreshing its expiry.
func (c *Cache) Add(id Identity) {
	c.lru.Add(id, time.Now())
	c.log.Debug("Session recorded.", "session", id.String())
}

// Remove forgets id and reports whether it was present.
func (c *Cache) Remove(id Identity) bool {
	return c.lru.Remove(id)
}

// Exists implements Registry. It does not refresh recency, and an entry
// past its ttl no longer counts even if the janitor has not reaped it yet.
func (c *Cache) Exists(id Identity) bool {
	_, ok := c.lru.Peek(id)
	return ok
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
