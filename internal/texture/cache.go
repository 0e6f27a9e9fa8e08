package texture

import (
	"image"
	"sync"
)

// Resolver resolves a texture path to a decoded RGBA image. Returns nil
// when the texture does not exist or cannot be decoded; callers treat a
// missing texture as a soft failure.
type Resolver interface {
	Resolve(path string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache keyed by path. Failed loads
// are cached too, so a missing file is only stat'd once per run.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*image.NRGBA)}
}

// Resolve loads and caches a texture by path.
func (c *Cache) Resolve(path string) *image.NRGBA {
	c.mu.RLock()
	img, exists := c.items[path]
	c.mu.RUnlock()
	if exists {
		return img
	}

	loaded, _ := LoadTexture(path)

	c.mu.Lock()
	if img, exists = c.items[path]; exists {
		c.mu.Unlock()
		return img
	}
	c.items[path] = loaded
	c.mu.Unlock()

	return loaded
}

// Len returns the number of cached entries, including failed loads.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
