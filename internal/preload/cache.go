package preload

import "sync"

// Cache keeps warmed image bytes keyed by their original reference.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewCache() *Cache {
	return &Cache{entries: map[string][]byte{}}
}

func (c *Cache) Put(ref string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[ref] = data
}

func (c *Cache) Get(ref string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[ref]
	return data, ok
}

func (c *Cache) Has(ref string) bool {
	_, ok := c.Get(ref)
	return ok
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
