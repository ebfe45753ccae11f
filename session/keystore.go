package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a keystore key has no value.
var ErrNotFound = errors.New("keystore: key not found")

// tokenKey is the fixed key the session token is persisted under.
const tokenKey = "token"

// Keystore is durable client-side key/value storage. It survives restarts
// until a value is explicitly deleted.
type Keystore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SQLiteKeystore stores values in a local metadata table.
type SQLiteKeystore struct {
	db *sql.DB
}

// OpenKeystore opens (creating if needed) the keystore at path. Parent
// directories are created as required.
func OpenKeystore(path string) (*SQLiteKeystore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("keystore: create dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("keystore: open: %w", err)
	}

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("keystore: init schema: %w", err)
	}

	return &SQLiteKeystore{db: db}, nil
}

func (s *SQLiteKeystore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLiteKeystore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO metadata(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (s *SQLiteKeystore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	return err
}

func (s *SQLiteKeystore) Close() error {
	return s.db.Close()
}
