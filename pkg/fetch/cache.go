package fetch

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Cache memoizes compressed responses. Those are the content-addressed
// manifest and repository bodies, which never change for a given URL.
// Uncompressed requests go straight through; empty bodies are not stored.
type Cache struct {
	next Fetcher

	mu      sync.Mutex
	entries map[uint64]cacheEntry
}

type cacheEntry struct {
	url  string
	body []byte
}

var _ Fetcher = (*Cache)(nil)

// NewCache wraps next.
func NewCache(next Fetcher) *Cache {
	return &Cache{
		next:    next,
		entries: make(map[uint64]cacheEntry),
	}
}

// Fetch implements Fetcher.
func (c *Cache) Fetch(ctx context.Context, rawURL string, decompress bool) []byte {
	if !decompress {
		return c.next.Fetch(ctx, rawURL, decompress)
	}

	key := xxhash.Sum64String(rawURL)
	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()
	if ok && entry.url == rawURL {
		return entry.body
	}

	body := c.next.Fetch(ctx, rawURL, decompress)
	if len(body) > 0 {
		c.mu.Lock()
		c.entries[key] = cacheEntry{url: rawURL, body: body}
		c.mu.Unlock()
	}
	return body
}

// Len returns the number of stored bodies.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
