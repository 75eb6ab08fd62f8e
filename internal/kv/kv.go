// Package kv provides the small string key-value storage that survives
// process restarts. Two backends exist: a JSON file (the default) and a
// badger directory.
package kv

import "fmt"

// Store is key → string storage. Get reports ok=false for an absent key.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Open returns the Store for the named backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFile(dir)
	case BackendBadger:
		return NewBadger(dir, false)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("kv: unknown backend %q", backend)
	}
}

// Memory is an in-process Store; nothing survives the process.
type Memory struct {
	m map[string]string
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

// Get returns the value under key.
func (s *Memory) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *Memory) Set(key, value string) error {
	s.m[key] = value
	return nil
}

// Close is a no-op.
func (s *Memory) Close() error { return nil }
