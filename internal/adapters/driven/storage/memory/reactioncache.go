package memory

import (
	"context"
	"sync"

	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driven"
)

// Ensure ReactionCache implements the interface.
var _ driven.ReactionCache = (*ReactionCache)(nil)

// ReactionCache is an in-memory implementation of driven.ReactionCache.
// Entries live for the process only; useful for tests and for runs with
// caching disabled on disk.
type ReactionCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	hits    int64
	misses  int64
	puts    int64
}

// NewReactionCache creates a new in-memory reaction cache.
func NewReactionCache() *ReactionCache {
	return &ReactionCache{
		entries: make(map[string][]byte),
	}
}

// Get retrieves a cached payload by key.
func (c *ReactionCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, domain.ErrNotFound
	}
	c.hits++
	return payload, nil
}

// Put stores a payload under a key, replacing any earlier payload.
func (c *ReactionCache) Put(_ context.Context, key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := make([]byte, len(payload))
	copy(stored, payload)
	c.entries[key] = stored
	c.puts++
	return nil
}

// Stats reports entry and traffic counts.
func (c *ReactionCache) Stats(_ context.Context) (driven.CacheStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return driven.CacheStats{
		Entries: int64(len(c.entries)),
		Hits:    c.hits,
		Misses:  c.misses,
		Puts:    c.puts,
	}, nil
}

// Clear removes all cached entries.
func (c *ReactionCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
	return nil
}

// Path identifies the cache as in-memory.
func (c *ReactionCache) Path() string {
	return ":memory:"
}

// Close releases nothing; the cache lives in process memory.
func (c *ReactionCache) Close() error {
	return nil
}
