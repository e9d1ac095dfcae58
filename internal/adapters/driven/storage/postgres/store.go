// Package postgres provides a Postgres-backed implementation of the reaction
// cache port for shared, multi-host caches.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ReactionCache = (*Store)(nil)

// schemaDDL creates the cache table. Postgres caches are shared between
// hosts, so the schema is ensured on every open rather than migrated.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS reactions (
	cache_key  TEXT PRIMARY KEY,
	payload    BYTEA NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store is a Postgres-backed reaction cache.
type Store struct {
	db  *sql.DB
	dsn string

	hits   atomic.Int64
	misses atomic.Int64
	puts   atomic.Int64
}

// NewStore opens a Postgres-backed reaction cache using the provided DSN.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring reactions table: %w", err)
	}
	return &Store{db: db, dsn: dsn}, nil
}

// Path returns the cache DSN.
func (s *Store) Path() string {
	return s.dsn
}

// Get retrieves a cached payload by key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM reactions WHERE cache_key = $1", key,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		s.misses.Add(1)
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying reaction cache: %w", err)
	}
	s.hits.Add(1)
	return payload, nil
}

// Put stores a payload under a key, replacing any earlier payload.
func (s *Store) Put(ctx context.Context, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reactions (cache_key, payload)
		VALUES ($1, $2)
		ON CONFLICT (cache_key) DO UPDATE SET
			payload = EXCLUDED.payload
	`, key, payload)
	if err != nil {
		return fmt.Errorf("storing reaction cache entry: %w", err)
	}
	s.puts.Add(1)
	return nil
}

// Stats reports entry and traffic counts. Hit, miss and put counters cover
// the current process; the entry count reflects the table.
func (s *Store) Stats(ctx context.Context) (driven.CacheStats, error) {
	var entries int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reactions").Scan(&entries)
	if err != nil {
		return driven.CacheStats{}, fmt.Errorf("counting reaction cache entries: %w", err)
	}
	return driven.CacheStats{
		Entries: entries,
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Puts:    s.puts.Load(),
	}, nil
}

// Clear removes all cached entries.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM reactions"); err != nil {
		return fmt.Errorf("clearing reaction cache: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
