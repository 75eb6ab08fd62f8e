// Package results owns the query→result cache, the bounded query history, and
// the persisted saved-query set.
//
// A Store is not safe for concurrent use. The TUI touches it only from its
// Update loop, which makes every Execute atomic from the caller's view.
package results

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/kv"
)

const (
	// HistoryLimit bounds the history log.
	HistoryLimit = 10

	// PageLimit is the number of leading rows handed to the grid renderer.
	PageLimit = 100
)

// ResultSet is the ordered rows produced by one execution of Query.
type ResultSet struct {
	Query string
	Rows  []dataset.Row
}

// Len returns the number of rows.
func (r ResultSet) Len() int { return len(r.Rows) }

// Empty reports whether the set has no rows.
func (r ResultSet) Empty() bool { return len(r.Rows) == 0 }

// Head returns at most the first n rows without copying.
func (r ResultSet) Head(n int) []dataset.Row {
	if n < 0 {
		n = 0
	}
	if len(r.Rows) <= n {
		return r.Rows
	}
	return r.Rows[:n]
}

// Execution describes a fresh (non-cached) execution, passed to the
// OnExecute hook.
type Execution struct {
	Query   string
	Matched bool
	Catalog string
	Rows    int
}

// Options configures a Store. Zero values are usable.
type Options struct {
	Catalog   []CatalogQuery // nil means DefaultCatalog()
	Logger    *slog.Logger
	OnExecute func(Execution) // called once per fresh execution, never on cache hits
}

// Store is the result store.
type Store struct {
	base      []dataset.Row
	catalog   []CatalogQuery
	compiled  map[string]compiled
	cache     map[string]ResultSet
	history   []string
	saved     *savedSet
	logger    *slog.Logger
	onExecute func(Execution)
}

// New builds a Store over base. Catalog results are precomputed here, and the
// saved set is loaded from persist; a nil persist keeps saved queries in
// memory only.
func New(base []dataset.Row, persist kv.Store, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if persist == nil {
		persist = kv.NewMemory()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Store{
		base:      base,
		catalog:   catalog,
		compiled:  compile(base, catalog),
		cache:     make(map[string]ResultSet),
		saved:     loadSavedSet(persist, logger),
		logger:    logger,
		onExecute: opts.OnExecute,
	}
}

// Execute returns the result for text. An exact cache hit returns the stored
// set with no other effect. Otherwise the trimmed text is matched against the
// catalog (falling back to the full dataset), text is pushed onto history,
// the result is cached under the raw text, and unmatched text is auto-saved.
func (s *Store) Execute(text string) ResultSet {
	if rs, ok := s.cache[text]; ok {
		return rs
	}

	rs := ResultSet{Query: text, Rows: s.base}
	c, matched := s.compiled[strings.TrimSpace(text)]
	if matched {
		rs.Rows = c.rows
	}

	s.history = append([]string{text}, s.history...)
	if len(s.history) > HistoryLimit {
		s.history = s.history[:HistoryLimit]
	}

	s.cache[text] = rs

	if !matched {
		s.saved.addFront(text)
	}

	s.logger.Debug("query executed", "query", text, "matched", matched, "rows", len(rs.Rows))
	if s.onExecute != nil {
		s.onExecute(Execution{Query: text, Matched: matched, Catalog: c.query.Name, Rows: len(rs.Rows)})
	}
	return rs
}

// ToggleSaved flips text's membership in the saved set and persists it.
func (s *Store) ToggleSaved(text string) {
	s.saved.toggle(text)
}

// IsSaved reports whether text is in the saved set.
func (s *Store) IsSaved(text string) bool {
	return s.saved.contains(text)
}

// Saved returns a copy of the saved queries in display order.
func (s *Store) Saved() []string {
	return s.saved.list()
}

// History returns a copy of the history log, most recent first.
func (s *Store) History() []string {
	return slices.Clone(s.history)
}

// Cached returns the cached result for the exact text.
func (s *Store) Cached(text string) (ResultSet, bool) {
	rs, ok := s.cache[text]
	return rs, ok
}

// CacheLen returns the number of cached queries.
func (s *Store) CacheLen() int {
	return len(s.cache)
}

// Catalog returns the recognized queries.
func (s *Store) Catalog() []CatalogQuery {
	return slices.Clone(s.catalog)
}

// Base returns the base dataset.
func (s *Store) Base() []dataset.Row {
	return s.base
}

// Label shortens a query to its first four words followed by "...".
func Label(text string) string {
	words := strings.Split(text, " ")
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ") + "..."
}
