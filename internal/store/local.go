package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"ideaforge/internal/types"
)

// Local is the on-device fallback store: a namespaced key-value table for
// cached state (selected components, preferences, stats) and a ledger of
// saved ideas for when the remote store is unreachable. Access is synchronous
// and assumed uncontended; a single connection with WAL keeps writes ordered.
type Local struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// OpenLocal initializes the SQLite database at the given path.
func OpenLocal(path string) (*Local, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal_mode: %w", err)
	}

	s := &Local{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initialize creates the required tables.
func (s *Local) initialize() error {
	kvTable := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	ideasTable := `
	CREATE TABLE IF NOT EXISTS ideas (
		id TEXT PRIMARY KEY,
		record TEXT NOT NULL,
		is_favorite INTEGER NOT NULL DEFAULT 0,
		saved_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	for _, stmt := range []string{kvTable, ideasTable} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Local) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key. The second return reports presence.
func (s *Local) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Local) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// DeleteKey removes a key. Deleting an absent key is not an error.
func (s *Local) DeleteKey(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// PutIdea inserts or replaces an idea in the local ledger.
func (s *Local) PutIdea(idea types.Idea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := json.Marshal(idea)
	if err != nil {
		return fmt.Errorf("failed to encode idea %q: %w", idea.ID, err)
	}

	fav := 0
	if idea.IsFavorite {
		fav = 1
	}
	_, err = s.db.Exec(
		`INSERT INTO ideas (id, record, is_favorite, saved_at, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET record = excluded.record,
			is_favorite = excluded.is_favorite, updated_at = CURRENT_TIMESTAMP`,
		idea.ID, string(record), fav)
	if err != nil {
		return fmt.Errorf("failed to store idea %q: %w", idea.ID, err)
	}
	return nil
}

// GetIdea returns one idea from the ledger, or ErrNotFound.
func (s *Local) GetIdea(id string) (types.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var record string
	err := s.db.QueryRow(`SELECT record FROM ideas WHERE id = ?`, id).Scan(&record)
	if err == sql.ErrNoRows {
		return types.Idea{}, ErrNotFound
	}
	if err != nil {
		return types.Idea{}, fmt.Errorf("failed to read idea %q: %w", id, err)
	}

	var idea types.Idea
	if err := json.Unmarshal([]byte(record), &idea); err != nil {
		return types.Idea{}, fmt.Errorf("failed to decode idea %q: %w", id, err)
	}
	return idea, nil
}

// ListIdeas returns the ledger ordered by save time, oldest first. Rows that
// fail to decode are skipped rather than failing the whole listing.
func (s *Local) ListIdeas() ([]types.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT record FROM ideas ORDER BY saved_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer rows.Close()

	var ideas []types.Idea
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("failed to scan idea row: %w", err)
		}
		var idea types.Idea
		if err := json.Unmarshal([]byte(record), &idea); err != nil {
			continue
		}
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}

// SetIdeaFavorite updates the favorite flag on a stored idea.
func (s *Local) SetIdeaFavorite(id string, favorite bool) error {
	idea, err := s.GetIdea(id)
	if err != nil {
		return err
	}
	idea.IsFavorite = favorite
	idea.Touch(time.Now())
	return s.PutIdea(idea)
}

// DeleteIdea removes an idea from the ledger. Absent ids are not an error;
// deletion is idempotent on this side.
func (s *Local) DeleteIdea(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM ideas WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete idea %q: %w", id, err)
	}
	return nil
}
