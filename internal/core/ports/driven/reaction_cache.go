package driven

import "context"

// CacheStats summarises the state of a reaction cache.
type CacheStats struct {
	// Entries is the number of stored result sets.
	Entries int64

	// Hits and Misses count lookups since the store was opened.
	Hits   int64
	Misses int64

	// Puts counts stored result sets since the store was opened.
	Puts int64
}

// ReactionCache persists enumerated reaction sets keyed by a content
// hash of the enumeration inputs.
type ReactionCache interface {
	// Get retrieves the payload stored under a key.
	// Returns domain.ErrNotFound when the key has never been stored.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores a payload under a key, replacing any earlier payload.
	// Payloads are deterministic for a key, so replacement also repairs
	// entries that fail to decode.
	Put(ctx context.Context, key string, payload []byte) error

	// Stats reports entry and lookup counters.
	Stats(ctx context.Context) (CacheStats, error)

	// Clear removes every stored result set.
	Clear(ctx context.Context) error

	// Path describes where the cache lives, for display.
	Path() string

	// Close releases the underlying store.
	Close() error
}
