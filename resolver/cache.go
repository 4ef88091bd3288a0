package resolver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/helpers"
)

// Cache stores ROR resolutions in SQLite. Entries older than the TTL are
// not served by Lookup but remain available to Prior as the last known
// name of an organisation.
type Cache struct {
	db   *sql.DB
	path string
	ttl  time.Duration
	now  func() time.Time
}

// CacheStats summarises the cache contents.
type CacheStats struct {
	Path    string
	Entries int64
	Stale   int64
	TTL     time.Duration
}

// OpenCache opens or creates the cache database at path. A ttl of zero
// keeps entries fresh forever.
func OpenCache(ctx context.Context, path string, ttl time.Duration) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db, path: path, ttl: ttl, now: time.Now}, nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	return c.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS ror_names (
	ror_key TEXT PRIMARY KEY,
	ror_id TEXT NOT NULL,
	name TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating cache schema: %w", err)
	}
	return nil
}

// Lookup returns a fresh cached name for rorID.
func (c *Cache) Lookup(ctx context.Context, rorID string) (string, bool) {
	name, fetched, ok := c.get(ctx, rorID)
	if !ok || c.stale(fetched) {
		return "", false
	}
	return name, true
}

// Prior returns the cached name for rorID regardless of age.
func (c *Cache) Prior(rorID string) (string, bool) {
	name, _, ok := c.get(context.Background(), rorID)
	return name, ok
}

// Store records a successful resolution.
func (c *Cache) Store(ctx context.Context, rorID, name string) error {
	key := helpers.RORKey(rorID)
	if key == "" || name == "" {
		return nil
	}
	_, err := c.db.ExecContext(ctx, `
INSERT INTO ror_names (ror_key, ror_id, name, fetched_at) VALUES (?, ?, ?, ?)
ON CONFLICT(ror_key) DO UPDATE SET ror_id = excluded.ror_id, name = excluded.name, fetched_at = excluded.fetched_at`,
		key, rorID, name, c.now().Unix())
	if err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}

// Stats reports the number of entries and how many are past the TTL.
func (c *Cache) Stats(ctx context.Context) (CacheStats, error) {
	stats := CacheStats{Path: c.path, TTL: c.ttl}
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ror_names").Scan(&stats.Entries); err != nil {
		return stats, fmt.Errorf("counting entries: %w", err)
	}
	if c.ttl > 0 {
		cutoff := c.now().Add(-c.ttl).Unix()
		if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ror_names WHERE fetched_at < ?", cutoff).Scan(&stats.Stale); err != nil {
			return stats, fmt.Errorf("counting stale entries: %w", err)
		}
	}
	return stats, nil
}

// Clear removes every entry and returns how many were removed.
func (c *Cache) Clear(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM ror_names")
	if err != nil {
		return 0, fmt.Errorf("clearing cache: %w", err)
	}
	return res.RowsAffected()
}

func (c *Cache) get(ctx context.Context, rorID string) (string, time.Time, bool) {
	key := helpers.RORKey(rorID)
	if key == "" {
		return "", time.Time{}, false
	}
	var name string
	var fetched int64
	err := c.db.QueryRowContext(ctx, "SELECT name, fetched_at FROM ror_names WHERE ror_key = ?", key).Scan(&name, &fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return "", time.Time{}, false
	}
	if err != nil {
		slog.Warn("reading ROR cache failed", "ror", rorID, "error", err)
		return "", time.Time{}, false
	}
	return name, time.Unix(fetched, 0), true
}

func (c *Cache) stale(fetched time.Time) bool {
	return c.ttl > 0 && c.now().Sub(fetched) > c.ttl
}

// Cached wraps an affiliation resolver with a Cache. Fresh entries are
// served without calling the upstream resolver; successful upstream
// resolutions are written back.
type Cached struct {
	Upstream format.AffiliationResolver
	Cache    *Cache
}

var (
	_ format.AffiliationResolver = (*Cached)(nil)
	_ format.PriorResolver       = (*Cached)(nil)
)

// Resolve implements format.AffiliationResolver.
func (c *Cached) Resolve(ctx context.Context, rorID string) (string, bool) {
	if name, ok := c.Cache.Lookup(ctx, rorID); ok {
		return name, true
	}
	if c.Upstream == nil {
		return "", false
	}
	name, ok := c.Upstream.Resolve(ctx, rorID)
	if !ok {
		return "", false
	}
	if err := c.Cache.Store(ctx, rorID, name); err != nil {
		slog.Warn("writing ROR cache failed", "ror", rorID, "error", err)
	}
	return name, true
}

// Prior implements format.PriorResolver.
func (c *Cached) Prior(rorID string) (string, bool) {
	return c.Cache.Prior(rorID)
}
