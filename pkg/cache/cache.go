package cache

import (
	"container/list"
	"sync"
	"time"
)

// Cache is an in-memory memoization table with a fixed capacity and a
// time-to-live window. Entries older than the TTL are treated as absent.
// When the capacity is exceeded the least recently used entry is evicted.
// All methods are safe for concurrent use.
type Cache[V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*list.Element
	order    *list.List // front = most recently used

	now func() time.Time // overridable in tests
}

type entry[V any] struct {
	key        string
	value      V
	insertedAt time.Time
}

// New creates a cache holding at most capacity entries, each visible for ttl
// after insertion. Capacity and ttl must be positive.
func New[V any](capacity int, ttl time.Duration) *Cache[V] {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	if ttl <= 0 {
		panic("cache: ttl must be positive")
	}

	return &Cache[V]{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

// Get returns the live value stored under key, if any.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.get(key)
}

// Set stores value under key, evicting the least recently used entry if the
// cache is full. An existing entry is overwritten and its TTL restarts.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value)
}

// GetOrCompute returns the cached value for key if a live entry exists,
// without invoking compute. Otherwise it invokes compute, stores the result
// and returns it. Compute runs outside the cache lock, so two concurrent
// misses on the same key may both compute; the later Set wins. That is
// acceptable for the idempotent lookups this cache fronts.
func (c *Cache[V]) GetOrCompute(key string, compute func() V) V {
	c.mu.Lock()
	if v, ok := c.get(key); ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	c.set(key, v)
	c.mu.Unlock()

	return v
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache[V]) get(key string) (V, bool) {
	var zero V

	el, ok := c.entries[key]
	if !ok {
		return zero, false
	}

	ent := el.Value.(*entry[V])
	if c.now().Sub(ent.insertedAt) >= c.ttl {
		// Expired entries count as absent; drop eagerly so they do not
		// occupy capacity.
		c.order.Remove(el)
		delete(c.entries, key)
		return zero, false
	}

	c.order.MoveToFront(el)
	return ent.value, true
}

func (c *Cache[V]) set(key string, value V) {
	if el, ok := c.entries[key]; ok {
		ent := el.Value.(*entry[V])
		ent.value = value
		ent.insertedAt = c.now()
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*entry[V]).key)
		}
	}

	c.entries[key] = c.order.PushFront(&entry[V]{
		key:        key,
		value:      value,
		insertedAt: c.now(),
	})
}
