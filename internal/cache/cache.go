// Package cache provides a bounded in-memory TTL cache with LRU eviction.
// One instance is created per entity family, so key shapes and TTLs can
// differ per family.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// TTL constants per content family. Historical content (league tables for
// finished seasons, profiles) is safe to keep far longer than search
// results; live match lists are never cached at all.
const (
	TTLSearch  = 1 * time.Hour
	TTLProfile = 1 * time.Hour
	TTLTable   = 6 * time.Hour
)

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// Cache is a thread-safe bounded TTL cache with least-recently-used
// eviction once full. A value, once written, is treated as immutable
// until eviction.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*list.Element
	order   *list.List // front = most recently used
	maxSize int
	ttl     time.Duration
	enabled bool

	now func() time.Time
}

// New creates a cache holding at most maxSize entries, each expiring ttl
// after insertion. Pass enabled=false to create a no-op cache.
func New[K comparable, V any](maxSize int, ttl time.Duration, enabled bool) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
		ttl:     ttl,
		enabled: enabled,
		now:     time.Now,
	}
}

// Get retrieves a cached value and reports whether a fresh entry was found.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	if !c.enabled {
		return zero, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	el, exists := c.entries[key]
	if !exists {
		return zero, false
	}
	e := el.Value.(*entry[K, V])
	if c.now().After(e.expiresAt) {
		c.order.Remove(el)
		delete(c.entries, key)
		return zero, false
	}
	c.order.MoveToFront(el)
	return e.value, true
}

// Put stores a value, evicting the least-recently-used entry if the cache
// is full. Inserting an existing key refreshes its value and TTL.
func (c *Cache[K, V]) Put(key K, value V) {
	if !c.enabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, exists := c.entries[key]; exists {
		e := el.Value.(*entry[K, V])
		e.value = value
		e.expiresAt = c.now().Add(c.ttl)
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.maxSize {
		c.evictOldest()
	}
	el := c.order.PushFront(&entry[K, V]{
		key:       key,
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	})
	c.entries[key] = el
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns cache statistics for the health endpoint.
func (c *Cache[K, V]) Stats() map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := 0
	now := c.now()
	for el := c.order.Front(); el != nil; el = el.Next() {
		if now.Before(el.Value.(*entry[K, V]).expiresAt) {
			active++
		}
	}
	return map[string]interface{}{
		"enabled":      c.enabled,
		"max_size":     c.maxSize,
		"ttl_seconds":  int(c.ttl.Seconds()),
		"total_keys":   c.order.Len(),
		"active_keys":  active,
		"expired_keys": c.order.Len() - active,
	}
}

// caller holds c.mu
func (c *Cache[K, V]) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.entries, el.Value.(*entry[K, V]).key)
}
