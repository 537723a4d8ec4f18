// Package localstore implements the durable local persistence adapter:
// a SQLite-backed key-value store holding JSON blobs under fixed logical
// keys. Local storage is the source of truth for the running session;
// the remote mirror is never required for correctness.
package localstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// dbFileName is the SQLite database file created inside the data dir.
const dbFileName = "larder.db"

// schemaSQL creates the single key-value table. Values are JSON text.
const schemaSQL = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

// Store is a durable key-value store over a local SQLite database.
// Reads of missing or corrupt values resolve to the caller's fallback;
// corruption is never surfaced as an error.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) the
// database, and ensures the schema. Existing data survives reopen.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get reads the value stored under key into dest and reports whether
// dest was populated. A missing row and a malformed stored value both
// return false, leaving dest untouched so the caller's fallback stands.
func (s *Store) Get(key string, dest any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}
	return true
}

// Put serializes value as JSON and upserts it under key. Callers treat
// writes as fire-and-forget; the returned error exists for logging.
func (s *Store) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
