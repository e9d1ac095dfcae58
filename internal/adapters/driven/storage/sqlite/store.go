package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/emwalker/lenrmc/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driven"
)

// Store is a SQLite-backed reaction cache. A single database connection
// serves the driven.ReactionCache port through a wrapper type.
type Store struct {
	db   *sql.DB
	path string

	hits   atomic.Int64
	misses atomic.Int64
	puts   atomic.Int64
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.lenrmc/data/reactions.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lenrmc", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "reactions.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ReactionCache returns a ReactionCache interface backed by this store.
func (s *Store) ReactionCache() driven.ReactionCache {
	return &reactionCache{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Reaction Cache ====================

// reactionCache implements driven.ReactionCache.
type reactionCache struct {
	store *Store
}

var _ driven.ReactionCache = (*reactionCache)(nil)

// Get retrieves a cached payload by key.
func (c *reactionCache) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := c.store.db.QueryRowContext(ctx,
		"SELECT payload FROM reactions WHERE cache_key = ?", key,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		c.store.misses.Add(1)
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying reaction cache: %w", err)
	}
	c.store.hits.Add(1)
	return payload, nil
}

// Put stores a payload under a key, replacing any earlier payload.
func (c *reactionCache) Put(ctx context.Context, key string, payload []byte) error {
	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO reactions (cache_key, payload)
		VALUES (?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			payload = excluded.payload
	`, key, payload)
	if err != nil {
		return fmt.Errorf("storing reaction cache entry: %w", err)
	}
	c.store.puts.Add(1)
	return nil
}

// Stats reports entry and traffic counts. Hit, miss and put counters cover
// the current process; the entry count reflects the table.
func (c *reactionCache) Stats(ctx context.Context) (driven.CacheStats, error) {
	var entries int64
	err := c.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reactions").Scan(&entries)
	if err != nil {
		return driven.CacheStats{}, fmt.Errorf("counting reaction cache entries: %w", err)
	}
	return driven.CacheStats{
		Entries: entries,
		Hits:    c.store.hits.Load(),
		Misses:  c.store.misses.Load(),
		Puts:    c.store.puts.Load(),
	}, nil
}

// Clear removes all cached entries.
func (c *reactionCache) Clear(ctx context.Context) error {
	if _, err := c.store.db.ExecContext(ctx, "DELETE FROM reactions"); err != nil {
		return fmt.Errorf("clearing reaction cache: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (c *reactionCache) Path() string {
	return c.store.Path()
}

// Close closes the underlying store.
func (c *reactionCache) Close() error {
	return c.store.Close()
}
