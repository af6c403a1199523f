// Package cache stores converted Markdown in a SQLite database so that
// unchanged PDFs are not converted twice.
//
// Entries are keyed by the SHA-256 of the input bytes combined with a
// fingerprint of the conversion configuration, so changing any threshold
// misses the cache instead of returning stale output.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"
)

// Store manages the conversion cache database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		key TEXT PRIMARY KEY,
		markdown TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Get returns the cached Markdown for key. The boolean is false on a miss.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var md string
	err := s.db.QueryRowContext(ctx, `SELECT markdown FROM conversions WHERE key = ?`, key).Scan(&md)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying cache: %w", err)
	}
	return md, true, nil
}

// Put stores markdown under key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key, markdown string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (key, markdown, created_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET markdown = excluded.markdown, created_at = excluded.created_at`,
		key, markdown, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

// Len returns the number of cached conversions.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

// Key derives the cache key for input data converted with config. The
// config is fingerprinted through its YAML encoding.
func Key(data []byte, config any) (string, error) {
	fingerprint, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("fingerprinting config: %w", err)
	}

	h := sha256.New()
	h.Write(data)
	h.Write([]byte{0})
	h.Write(fingerprint)
	return hex.EncodeToString(h.Sum(nil)), nil
}
