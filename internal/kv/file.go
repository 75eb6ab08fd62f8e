package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// stateFileName is the JSON object file inside the storage dir.
const stateFileName = "state.json"

// File is a Store backed by a single JSON object file. Every Set rewrites the
// whole file with a write-then-rename so readers never observe a partial file.
type File struct {
	mu   sync.Mutex
	dir  string
	path string
}

// NewFile creates dir if needed and returns a File store inside it.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("kv: mkdir %q: %w", dir, err)
	}
	return &File{dir: dir, path: filepath.Join(dir, stateFileName)}, nil
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Get reads key from the state file. A missing file is an empty store.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Set stores value under key.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.read()
	if err != nil {
		// An unreadable state file is replaced rather than blocking writes.
		m = make(map[string]string)
	}
	m[key] = value
	return f.write(m)
}

// Close is a no-op; the file is not held open between calls.
func (f *File) Close() error { return nil }

func (f *File) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("kv: read %s: %w", f.path, err)
	}
	m := make(map[string]string)
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("kv: parse %s: %w", f.path, err)
	}
	return m, nil
}

func (f *File) write(m map[string]string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("kv: marshal: %w", err)
	}
	tmp, err := os.CreateTemp(f.dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("kv: create temp: %w", err)
	}
	if _, writeErr := tmp.Write(data); writeErr != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: write: %w", writeErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: close: %w", closeErr)
	}
	if renameErr := os.Rename(tmp.Name(), f.path); renameErr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: finalize: %w", renameErr)
	}
	return nil
}
