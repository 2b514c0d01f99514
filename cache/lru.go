// Package cache provides the small least-recently-used cache that backs
// raster resource caching. Raster resources (backgrounds, height maps,
// vector-field images) are few and large, so the default capacity is
// deliberately tiny.
package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is the number of entries an LRU holds unless the
// caller asks for more.
const DefaultCapacity = 6

// LRU is a fixed-capacity least-recently-used cache.
//
// Get counts as a use and refreshes the entry's recency; Has does not.
// Inserting beyond capacity evicts the least recently used entry. Values
// are stored as-is (not copied); callers should not modify them after
// caching.
//
// LRU is safe for concurrent use. Load completions arrive on loader
// goroutines while the compositor reads on its own, so the lock is not
// optional here even though the rest of the pipeline is single-threaded.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	recency  list[K]
	capacity int

	// Statistics (atomic for lock-free reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// entry holds a cached value with its recency node.
type entry[K comparable, V any] struct {
	value V
	node  *node[K]
}

// New creates an LRU with the given capacity.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		entries:  make(map[K]*entry[K, V]),
		capacity: capacity,
	}
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
// On a hit the entry becomes the most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.recency.MoveToFront(e.node)
	value := e.value
	c.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Has reports whether the key is cached without refreshing its recency.
func (c *LRU[K, V]) Has(key K) bool {
	c.mu.Lock()
	_, ok := c.entries[key]
	c.mu.Unlock()
	return ok
}

// Put stores a value. If the key already exists its value is replaced and
// it becomes the most recently used; otherwise the least recently used
// entry is evicted once the cache is at capacity.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		existing.value = value
		c.recency.MoveToFront(existing.node)
		return
	}

	for c.recency.Len() >= c.capacity {
		oldest, ok := c.recency.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
		c.evictions.Add(1)
	}

	n := c.recency.PushFront(key)
	c.entries[key] = &entry[K, V]{value: value, node: n}
}

// Delete removes an entry. Returns true if the entry was found and removed.
func (c *LRU[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.recency.Remove(e.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[K]*entry[K, V])
	c.recency.Clear()
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	n := len(c.entries)
	c.mu.Unlock()
	return n
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Oldest returns the least recently used key without touching recency.
// Useful in tests and diagnostics.
func (c *LRU[K, V]) Oldest() (K, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recency.Oldest()
}

// Stats describes cache effectiveness counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	HitRate   float64
	Evictions uint64
}

// Stats returns current cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}
