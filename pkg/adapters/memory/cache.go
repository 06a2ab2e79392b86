package memory

import (
	"context"
	"sync"

	"github.com/aretw0/prism/pkg/ports"
)

// Cache implements ports.RenderCache in memory.
// Safe for concurrent use.
type Cache struct {
	data  map[string]string
	order []string
	limit int
	mu    sync.RWMutex
}

// Option configures a Cache.
type Option func(*Cache)

// WithLimit bounds the number of entries. When full, the oldest entry is evicted.
// A limit of zero or less means unbounded.
func WithLimit(n int) Option {
	return func(c *Cache) {
		c.limit = n
	}
}

// NewCache creates a new in-memory cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.data[key]
	if !ok {
		return "", ports.ErrCacheMiss
	}
	return v, nil
}

// Set stores the value, evicting the oldest entry if the cache is full.
func (c *Cache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists {
		if c.limit > 0 && len(c.data) >= c.limit {
			c.evictOldest()
		}
		c.order = append(c.order, key)
	}
	c.data[key] = value
	return nil
}

// Delete removes the value.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.data[key]; !ok {
		return nil
	}
	delete(c.data, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

func (c *Cache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.data, oldest)
}
