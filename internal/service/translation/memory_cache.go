package translation

import (
	"context"
	"sync"
	"sync/atomic"
)

// MemoryCache is an unbounded in-process cache. It lives as long as the process.
type MemoryCache struct {
	entries sync.Map
	size    atomic.Int64
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := c.entries.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (c *MemoryCache) Add(_ context.Context, key, value string) bool {
	if _, loaded := c.entries.LoadOrStore(key, value); loaded {
		return false
	}
	c.size.Add(1)
	return true
}

func (c *MemoryCache) Len() int {
	return int(c.size.Load())
}

var (
	_ Cache = (*MemoryCache)(nil)
	_ Sizer = (*MemoryCache)(nil)
)
