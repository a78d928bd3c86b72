// Package storage provides the key-value persistence substrates behind
// port.KeyValueStore. All of them share the local-storage contract: values
// are JSON documents, access is synchronous, and failures degrade to a
// boolean false (or the caller's preset default) instead of propagating.
package storage

import (
	"encoding/json"
	"log/slog"
)

func encode(op, key string, value any) (string, bool) {
	b, err := json.Marshal(value)
	if err != nil {
		slog.Error("failed to encode value", "op", op, "key", key, "err", err)
		return "", false
	}
	return string(b), true
}

func decode(op, key, raw string, dst any) bool {
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.Error("failed to decode value", "op", op, "key", key, "err", err)
		return false
	}
	return true
}
