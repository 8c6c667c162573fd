// Package cache persists geo-query results across runs so repeated
// coordinates never hit the network twice. Entries live in memory and are
// flushed to a SQLite file periodically; cache failures degrade to misses
// and never abort an analysis.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// flushEvery is the number of Puts between automatic flushes.
const flushEvery = 10

// Store is a write-back cache over a SQLite file. Safe for concurrent use.
type Store struct {
	mu             sync.Mutex
	db             *sql.DB
	entries        map[string]json.RawMessage
	dirty          map[string]struct{}
	putsSinceFlush int
}

const migration = `
CREATE TABLE IF NOT EXISTS results (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// Open opens (or creates) the cache database at path and loads all
// existing entries into memory.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "cache: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "cache: exec %s", pragma)
		}
	}
	if _, err := db.Exec(migration); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "cache: migrate")
	}

	s := &Store{
		db:      db,
		entries: make(map[string]json.RawMessage),
		dirty:   make(map[string]struct{}),
	}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	rows, err := s.db.Query(`SELECT key, value FROM results`)
	if err != nil {
		return eris.Wrap(err, "cache: load")
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return eris.Wrap(err, "cache: scan entry")
		}
		s.entries[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return eris.Wrap(err, "cache: iterate entries")
	}
	zap.L().Debug("cache loaded", zap.Int("entries", len(s.entries)))
	return nil
}

// Get unmarshals the cached value for key into v. Returns false on a miss
// or when the stored value cannot be decoded.
func (s *Store) Get(key string, v any) bool {
	s.mu.Lock()
	raw, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		zap.L().Warn("cache: discarding undecodable entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Put stores v under key. Marshal failures are logged and dropped. Every
// tenth Put triggers a flush to disk.
func (s *Store) Put(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		zap.L().Warn("cache: cannot marshal value", zap.String("key", key), zap.Error(err))
		return
	}

	s.mu.Lock()
	s.entries[key] = raw
	s.dirty[key] = struct{}{}
	s.putsSinceFlush++
	shouldFlush := s.putsSinceFlush >= flushEvery
	s.mu.Unlock()

	if shouldFlush {
		if err := s.Flush(context.Background()); err != nil {
			zap.L().Warn("cache: periodic flush failed", zap.Error(err))
		}
	}
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Flush writes all dirty entries to disk in one transaction.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.dirty) == 0 {
		s.putsSinceFlush = 0
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "cache: begin flush")
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if err != nil {
		return eris.Wrap(err, "cache: prepare flush")
	}
	defer stmt.Close() //nolint:errcheck

	now := time.Now().UTC()
	for key := range s.dirty {
		if _, err := stmt.ExecContext(ctx, key, string(s.entries[key]), now); err != nil {
			return eris.Wrapf(err, "cache: flush entry %s", key)
		}
	}
	if err := tx.Commit(); err != nil {
		return eris.Wrap(err, "cache: commit flush")
	}

	flushed := len(s.dirty)
	s.dirty = make(map[string]struct{})
	s.putsSinceFlush = 0
	zap.L().Debug("cache flushed", zap.Int("entries", flushed))
	return nil
}

// Close flushes pending entries and closes the database.
func (s *Store) Close() error {
	if err := s.Flush(context.Background()); err != nil {
		zap.L().Warn("cache: final flush failed", zap.Error(err))
	}
	return s.db.Close()
}

// PresenceKey is the cache key for a presence-vector lookup. Coordinates
// keep their full precision: nearby-but-distinct points are distinct keys.
func PresenceKey(lat, lon float64, radiusM int) string {
	return formatFloat(lat) + "," + formatFloat(lon) + "," + strconv.Itoa(radiusM)
}

// DetailKey is the cache key for a per-category detail lookup.
func DetailKey(lat, lon float64, categoryKey string, radiusM int) string {
	return "detail_" + formatFloat(lat) + "," + formatFloat(lon) + "," + categoryKey + "," + strconv.Itoa(radiusM)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
