// ABOUTME: Thread-safe bounded cache combining per-entry TTL with LRU eviction.
// ABOUTME: Shields upstream lookups (weather, market, knowledge) from repeat calls.

package cache

import (
	"container/list"
	"sync"
	"time"
)

// entry stores a cached value, its expiry, and its position in the recency list.
type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	element   *list.Element
}

// Cache is a thread-safe mapping with a maximum entry count and a per-key TTL.
// Expiry is checked at read time and is authoritative: a value is never
// returned after its TTL elapses, even if the sweep goroutine has not removed
// it yet. When the cache is full, inserting a new key evicts the
// least-recently-used entry regardless of its remaining TTL.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[K, V]
	order   *list.List // recency order, least-recently-used at front
	ttl     time.Duration
	maxSize int
	done    chan struct{}
	closed  bool

	now func() time.Time // injectable for tests
}

// New creates a cache with the given TTL and maximum size. A background
// goroutine periodically sweeps expired entries to bound memory.
func New[K comparable, V any](ttl time.Duration, maxSize int) *Cache[K, V] {
	c := &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		order:   list.New(),
		ttl:     ttl,
		maxSize: maxSize,
		done:    make(chan struct{}),
		now:     time.Now,
	}
	go c.sweep()
	return c
}

// Get returns the value for key if present and unexpired. A merely expired
// entry is removed on access; an absent key is left alone.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if !c.now().Before(e.expiresAt) {
		c.order.Remove(e.element)
		delete(c.entries, key)
		return zero, false
	}
	c.order.MoveToBack(e.element)
	return e.value, true
}

// Put inserts or overwrites the value for key. An overwrite resets both the
// TTL clock and the entry's recency. If the cache is full and key is new, the
// least-recently-used entry is evicted first.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(c.ttl)

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = expires
		c.order.MoveToBack(e.element)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictLRU()
	}

	e := &entry[K, V]{key: key, value: value, expiresAt: expires}
	e.element = c.order.PushBack(e)
	c.entries[key] = e
}

// Len returns the number of live (unexpired) entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	n := 0
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}

// evictLRU removes the least-recently-used entry. Must be called with mu held.
func (c *Cache[K, V]) evictLRU() {
	front := c.order.Front()
	if front == nil {
		return
	}
	e := front.Value.(*entry[K, V])
	c.order.Remove(front)
	delete(c.entries, e.key)
}

// sweep runs in a background goroutine, removing expired entries so an idle
// cache does not pin memory until the next read.
func (c *Cache[K, V]) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.done:
			return
		}
	}
}

// removeExpired drops all entries whose TTL has elapsed.
func (c *Cache[K, V]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			c.order.Remove(e.element)
			delete(c.entries, key)
		}
	}
}

// Close stops the background sweep goroutine. Safe to call multiple times.
func (c *Cache[K, V]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		close(c.done)
		c.closed = true
	}
}
