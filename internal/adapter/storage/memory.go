package storage

import (
	"github.com/zafahi/tralashop/internal/core/port"
)

var _ port.KeyValueStore = (*MemoryStore)(nil)

// MemoryStore keeps values in a plain map. It backs tests and serves as the
// fallback when no store path is configured. Values still round-trip through
// JSON so the encoding contract matches the durable backends.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Set(key string, value any) bool {
	const op = "MemoryStore.Set"

	raw, ok := encode(op, key, value)
	if !ok {
		return false
	}
	s.values[key] = raw
	return true
}

func (s *MemoryStore) Get(key string, dst any) bool {
	const op = "MemoryStore.Get"

	raw, ok := s.values[key]
	if !ok {
		return false
	}
	return decode(op, key, raw, dst)
}

func (s *MemoryStore) Remove(key string) bool {
	delete(s.values, key)
	return true
}

func (s *MemoryStore) Clear() bool {
	s.values = make(map[string]string)
	return true
}
