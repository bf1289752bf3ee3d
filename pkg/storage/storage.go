// Package storage provides the document store backing the application: a
// single SQLite database holding one JSON document per storage key. Multi-key
// mutations run inside one SQL transaction, so a partial update can never be
// observed or persisted.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store is a SQLite-backed key/document store.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the store at the provided path, creating it if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Tx is a transaction over the document store.
type Tx struct {
	ctx context.Context
	tx  *sql.Tx
}

// Update runs fn inside a read-write transaction. The transaction commits if
// fn returns nil and rolls back otherwise.
func (s *Store) Update(ctx context.Context, fn func(*Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&Tx{ctx: ctx, tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// View runs fn inside a read-only transaction.
func (s *Store) View(ctx context.Context, fn func(*Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	return fn(&Tx{ctx: ctx, tx: tx})
}

// Get returns the raw document stored under key. The boolean reports whether
// the document exists.
func (t *Tx) Get(key string) ([]byte, bool, error) {
	var value string
	err := t.tx.QueryRowContext(t.ctx, `SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get document %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put stores value under key, replacing any existing document.
func (t *Tx) Put(key string, value []byte) error {
	_, err := t.tx.ExecContext(t.ctx,
		`INSERT INTO documents (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(value))
	if err != nil {
		return fmt.Errorf("put document %q: %w", key, err)
	}
	return nil
}

// Delete removes the document stored under key. Deleting a missing key is a
// no-op.
func (t *Tx) Delete(key string) error {
	if _, err := t.tx.ExecContext(t.ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}
	return nil
}

// GetDoc unmarshals the document stored under key into T. The boolean reports
// whether the document exists; when it does not, the zero value is returned.
func GetDoc[T any](t *Tx, key string) (T, bool, error) {
	var out T

	raw, ok, err := t.Get(key)
	if err != nil || !ok {
		return out, ok, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decode document %q: %w", key, err)
	}
	return out, true, nil
}

// PutDoc marshals v and stores it under key.
func PutDoc[T any](t *Tx, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document %q: %w", key, err)
	}
	return t.Put(key, raw)
}
