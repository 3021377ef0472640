// internal/infra/sqlite/kv.go
package sqliteinfra

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "modernc.org/sqlite"
)

// DriverName is the SQLite driver to use (pure Go, no CGO).
const DriverName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS cart_blobs (
    session_id TEXT NOT NULL,
    key        TEXT NOT NULL,
    value      BLOB NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (session_id, key)
);
`

// KV is a small durable key-value store over SQLite, the local analog of the
// client's on-device storage: one blob per (session, key).
type KV struct {
	DB *sql.DB
}

// Open opens (or creates) the store at path. ":memory:" works for tests.
func Open(path string) (*KV, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open failed: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema init failed: %w", err)
	}

	log.Printf("[sqlite] cart store ready (path: %s)", path)
	return &KV{DB: db}, nil
}

// Get returns the blob for (sessionID, key), or (nil, nil) when absent.
func (s *KV) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	if s == nil || s.DB == nil {
		return nil, fmt.Errorf("sqlite kv is nil")
	}

	const q = `SELECT value FROM cart_blobs WHERE session_id = ? AND key = ?`
	var blob []byte
	err := s.DB.QueryRowContext(ctx, q, strings.TrimSpace(sessionID), key).Scan(&blob)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return blob, nil
}

// Put overwrites the blob for (sessionID, key).
func (s *KV) Put(ctx context.Context, sessionID, key string, blob []byte) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("sqlite kv is nil")
	}

	const q = `
INSERT INTO cart_blobs (session_id, key, value, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (session_id, key) DO UPDATE SET
    value = excluded.value,
    updated_at = CURRENT_TIMESTAMP
`
	_, err := s.DB.ExecContext(ctx, q, strings.TrimSpace(sessionID), key, blob)
	return err
}

// Delete removes the blob for (sessionID, key). Missing rows are not an error.
func (s *KV) Delete(ctx context.Context, sessionID, key string) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("sqlite kv is nil")
	}

	const q = `DELETE FROM cart_blobs WHERE session_id = ? AND key = ?`
	_, err := s.DB.ExecContext(ctx, q, strings.TrimSpace(sessionID), key)
	return err
}

func (s *KV) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
