package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zafahi/tralashop/internal/core/port"
)

var _ port.KeyValueStore = (*FileStore)(nil)

// FileStore mirrors the whole key space into a single JSON document on disk,
// loaded once at construction and rewritten on every mutation. Write-through,
// no batching: callers treat storage as synchronous and always available, so
// a failed write is logged and reported false rather than retried.
type FileStore struct {
	path   string
	values map[string]json.RawMessage
}

// NewFileStore loads the document at path if it exists. An unreadable or
// corrupt document starts the store empty; it will be overwritten by the
// next Set.
func NewFileStore(path string) *FileStore {
	const op = "FileStore"
	log := slog.With("op", op, "path", path)

	s := &FileStore{path: path, values: make(map[string]json.RawMessage)}

	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Error("failed to read store file", "err", err)
		}
		return s
	}

	if err := json.Unmarshal(b, &s.values); err != nil {
		log.Error("failed to parse store file, starting empty", "err", err)
		s.values = make(map[string]json.RawMessage)
	}
	return s
}

func (s *FileStore) Set(key string, value any) bool {
	const op = "FileStore.Set"

	raw, ok := encode(op, key, value)
	if !ok {
		return false
	}
	s.values[key] = json.RawMessage(raw)
	return s.flush(op)
}

func (s *FileStore) Get(key string, dst any) bool {
	const op = "FileStore.Get"

	raw, ok := s.values[key]
	if !ok {
		return false
	}
	return decode(op, key, string(raw), dst)
}

func (s *FileStore) Remove(key string) bool {
	const op = "FileStore.Remove"

	if _, ok := s.values[key]; !ok {
		return true
	}
	delete(s.values, key)
	return s.flush(op)
}

func (s *FileStore) Clear() bool {
	const op = "FileStore.Clear"

	s.values = make(map[string]json.RawMessage)
	return s.flush(op)
}

func (s *FileStore) flush(op string) bool {
	log := slog.With("op", op, "path", s.path)

	b, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		log.Error("failed to encode store document", "err", err)
		return false
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("failed to create store directory", "err", err)
			return false
		}
	}

	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		log.Error("failed to write store file", "err", err)
		return false
	}
	return true
}
