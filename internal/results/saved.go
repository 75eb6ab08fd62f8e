package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/kv"
)

// SavedKey is the persistence key holding the saved queries as a JSON array.
const SavedKey = "savedQueries"

// ErrPersistedStateCorrupt reports saved-query data that cannot be decoded.
var ErrPersistedStateCorrupt = errors.New("persisted saved queries are corrupt")

// LoadSaved reads the saved-query set from store. An absent key is an empty
// set. Malformed data returns an error wrapping ErrPersistedStateCorrupt.
// Duplicate entries collapse to their first occurrence.
func LoadSaved(store kv.Store) ([]string, error) {
	raw, ok, err := store.Get(SavedKey)
	if err != nil {
		return nil, fmt.Errorf("results: load saved: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("results: load saved: %w: %v", ErrPersistedStateCorrupt, err)
	}
	out := make([]string, 0, len(items))
	for _, q := range items {
		if !slices.Contains(out, q) {
			out = append(out, q)
		}
	}
	return out, nil
}

// savedSet is the single-writer holder for the persisted saved queries.
type savedSet struct {
	items  []string
	store  kv.Store
	logger *slog.Logger
}

func loadSavedSet(store kv.Store, logger *slog.Logger) *savedSet {
	items, err := LoadSaved(store)
	if err != nil {
		logger.Warn("saved queries unreadable, starting empty", "err", err)
		items = nil
	}
	return &savedSet{items: items, store: store, logger: logger}
}

func (s *savedSet) contains(q string) bool {
	return slices.Contains(s.items, q)
}

// addFront puts q first, dropping any earlier occurrence, then persists.
func (s *savedSet) addFront(q string) {
	items := make([]string, 0, len(s.items)+1)
	items = append(items, q)
	for _, existing := range s.items {
		if existing != q {
			items = append(items, existing)
		}
	}
	s.items = items
	s.save()
}

// toggle removes q if present, otherwise appends it, then persists.
func (s *savedSet) toggle(q string) {
	if i := slices.Index(s.items, q); i >= 0 {
		s.items = slices.Delete(slices.Clone(s.items), i, i+1)
	} else {
		s.items = append(slices.Clone(s.items), q)
	}
	s.save()
}

func (s *savedSet) save() {
	items := s.items
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		s.logger.Warn("saved queries: marshal failed", "err", err)
		return
	}
	if err := s.store.Set(SavedKey, string(data)); err != nil {
		s.logger.Warn("saved queries: persist failed", "err", err)
	}
}

func (s *savedSet) list() []string {
	return slices.Clone(s.items)
}
