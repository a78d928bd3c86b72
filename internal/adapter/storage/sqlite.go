package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/zafahi/tralashop/internal/core/port"
)

var _ port.KeyValueStore = (*SQLiteStore)(nil)

// SQLiteStore keeps the key space in an embedded sqlite database, one row
// per key. Same contract as FileStore; useful when several demo runs should
// share state without a whole document rewrite per mutation.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	const op = "SQLiteStore"

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create kv table: %w", op, err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Set(key string, value any) bool {
	const op = "SQLiteStore.Set"

	raw, ok := encode(op, key, value)
	if !ok {
		return false
	}

	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, raw,
	)
	if err != nil {
		slog.Error("failed to upsert", "op", op, "key", key, "err", err)
		return false
	}
	return true
}

func (s *SQLiteStore) Get(key string, dst any) bool {
	const op = "SQLiteStore.Get"

	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		slog.Error("failed to select", "op", op, "key", key, "err", err)
		return false
	}
	return decode(op, key, raw, dst)
}

func (s *SQLiteStore) Remove(key string) bool {
	const op = "SQLiteStore.Remove"

	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		slog.Error("failed to delete", "op", op, "key", key, "err", err)
		return false
	}
	return true
}

func (s *SQLiteStore) Clear() bool {
	const op = "SQLiteStore.Clear"

	if _, err := s.db.Exec(`DELETE FROM kv`); err != nil {
		slog.Error("failed to clear", "op", op, "err", err)
		return false
	}
	return true
}

func (s *SQLiteStore) Close() {
	const op = "SQLiteStore.Close"

	if err := s.db.Close(); err != nil {
		slog.Error("failed to close database", "op", op, "err", err)
	}
}
