// Package cache provides a small LRU cache with per-entry TTL, used to
// memoize routing decisions for repeated queries.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Cache is the common interface for in-process caches.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Len() int
	Purge()
}

type entry struct {
	key     string
	value   any
	expires time.Time
	element *list.Element
}

type lruCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[string]*entry
	order    *list.List
}

// NewLRU creates an LRU cache with the given capacity and default TTL.
// Non-positive arguments fall back to 512 entries and one minute.
func NewLRU(capacity int, ttl time.Duration) Cache {
	if capacity <= 0 {
		capacity = 512
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &lruCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry, capacity),
		order:    list.New(),
	}
}

func (c *lruCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !ent.expires.IsZero() && !time.Now().Before(ent.expires) {
		c.removeEntry(ent)
		return nil, false
	}
	c.order.MoveToFront(ent.element)
	return ent.value, true
}

// Set inserts or refreshes a key. A non-positive ttl uses the cache
// default.
func (c *lruCache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		ent.value = value
		ent.expires = c.computeExpiry(ttl)
		c.order.MoveToFront(ent.element)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	elem := c.order.PushFront(key)
	c.items[key] = &entry{
		key:     key,
		value:   value,
		expires: c.computeExpiry(ttl),
		element: elem,
	}
}

func (c *lruCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *lruCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*entry, c.capacity)
	c.order.Init()
}

func (c *lruCache) computeExpiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		ttl = c.ttl
	}
	if ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(ttl)
}

func (c *lruCache) evictOldest() {
	elem := c.order.Back()
	if elem == nil {
		return
	}
	if ent, ok := c.items[elem.Value.(string)]; ok {
		c.removeEntry(ent)
	}
}

func (c *lruCache) removeEntry(ent *entry) {
	if ent.element != nil {
		c.order.Remove(ent.element)
	}
	delete(c.items, ent.key)
}
