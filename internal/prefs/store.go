// Package prefs persists session preferences as JSON values keyed by name.
package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/Mavwarf/onenote/internal/config"
)

// Store is an opaque key-value preference store. Values are JSON
// documents; Get decodes into v the same way json.Unmarshal does.
type Store interface {
	Get(key string, v any) (bool, error)
	Set(key string, v any) error
	Delete(key string) error
	Clear() error // remove every key

	Close() error
	Path() string
}

// Open returns the Store for the given storage backend.
func Open(storage, path string) (Store, error) {
	switch storage {
	case config.StorageJSON, "":
		return NewFileStore(path), nil
	case config.StorageSQLite:
		return NewSQLiteStore(path)
	}
	return nil, fmt.Errorf("prefs: unknown storage %q", storage)
}

func encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("prefs: marshal: %w", err)
	}
	return data, nil
}

func decode(key string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("prefs: decode %s: %w", key, err)
	}
	return nil
}
