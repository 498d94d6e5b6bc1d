package prefs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Mavwarf/onenote/internal/paths"
)

// FileStore implements Store as a single JSON object on disk. Every
// operation re-reads the file so external edits are picked up.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore backed by the given file. The file is
// created on the first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// load returns the stored object. A missing or corrupt file reads as empty.
func (f *FileStore) load() map[string]json.RawMessage {
	m := make(map[string]json.RawMessage)
	data, err := os.ReadFile(f.path)
	if err != nil {
		return m
	}
	if err := json.Unmarshal(data, &m); err != nil {
		fmt.Fprintf(os.Stderr, "prefs: %s is corrupt, starting empty: %v\n", f.path, err)
		return make(map[string]json.RawMessage)
	}
	return m
}

func (f *FileStore) save(m map[string]json.RawMessage) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("prefs: marshal: %w", err)
	}
	if err := paths.AtomicWrite(f.path, data); err != nil {
		return fmt.Errorf("prefs: write %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) Get(key string, v any) (bool, error) {
	raw, ok := f.load()[key]
	if !ok {
		return false, nil
	}
	return true, decode(key, raw, v)
}

func (f *FileStore) Set(key string, v any) error {
	data, err := encode(v)
	if err != nil {
		return err
	}
	m := f.load()
	m[key] = data
	return f.save(m)
}

func (f *FileStore) Delete(key string) error {
	m := f.load()
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return f.save(m)
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("prefs: remove %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }

func (f *FileStore) Path() string { return f.path }
