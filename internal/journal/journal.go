// Package journal records every fresh query execution to an append-only
// JSONL file. Cache hits are never journaled: the result store only calls
// Append on the path that also appends to the in-memory history.
package journal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileName is the journal file name inside the data dir.
const FileName = "journal.jsonl"

// Entry is one executed query.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`
	Matched   bool      `json:"matched"`
	Catalog   string    `json:"catalog,omitempty"` // catalog query name when matched
	Rows      int       `json:"rows"`
}

// JSONL is a journal backed by an append-only JSONL file. The file is synced
// after every Append.
type JSONL struct {
	mu     sync.Mutex
	file   *os.File
	path   string
	logger *slog.Logger
}

// Open creates (or reopens) the journal in dir. dir is created if needed.
func Open(dir string, logger *slog.Logger) (*JSONL, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("journal: mkdir %q: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("journal: open %q: %w", path, err)
	}
	return &JSONL{file: f, path: path, logger: logger}, nil
}

// Path returns the journal file path.
func (j *JSONL) Path() string { return j.path }

// Append serializes entry as one JSON line and syncs the file.
func (j *JSONL) Append(entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("journal: marshal: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()
	if _, err := j.file.Write(data); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("journal: sync: %w", err)
	}
	return nil
}

// Entries reads the whole journal, oldest first. Malformed lines are logged
// and skipped.
func (j *JSONL) Entries() ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := os.ReadFile(j.path)
	if err != nil {
		return nil, fmt.Errorf("journal: read: %w", err)
	}
	return j.decode(data), nil
}

func (j *JSONL) decode(data []byte) []Entry {
	var entries []Entry
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			j.logger.Warn("journal: skipping malformed line", "line", n, "err", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// Trim keeps only the newest maxKeep entries. maxKeep <= 0 keeps everything.
func (j *JSONL) Trim(maxKeep int) error {
	if maxKeep <= 0 {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := os.ReadFile(j.path)
	if err != nil {
		return fmt.Errorf("journal: read: %w", err)
	}
	entries := j.decode(data)
	if len(entries) <= maxKeep {
		return nil
	}
	entries = entries[len(entries)-maxKeep:]

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("journal: marshal: %w", err)
		}
	}
	if err := j.file.Truncate(0); err != nil {
		return fmt.Errorf("journal: truncate: %w", err)
	}
	if _, err := j.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("journal: seek: %w", err)
	}
	if _, err := j.file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	return j.file.Sync()
}

// Close closes the underlying file.
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}
