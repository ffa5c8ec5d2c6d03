// internal/adapters/memory/cache.go
package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rkarim/chatcart/internal/ports"
)

type entry struct {
	data    []byte
	expires time.Time
}

// Cache is an in-process CachePort used when no redis address is configured.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, entries: make(map[string]entry)}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, ports.ErrCacheMiss
	}
	return e.data, nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var expires time.Time
	if c.ttl > 0 {
		expires = time.Now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[key] = entry{data: data, expires: expires}
	c.mu.Unlock()
	return nil
}

func (c *Cache) Ping(ctx context.Context) error { return nil }
