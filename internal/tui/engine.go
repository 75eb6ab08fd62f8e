package tui

import (
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/results"
)

// Engine is the query backend the TUI drives. *results.Store satisfies it.
// All calls happen on the bubbletea Update loop.
type Engine interface {
	Execute(text string) results.ResultSet
	ToggleSaved(text string)
	IsSaved(text string) bool
	Saved() []string
	History() []string
	Catalog() []results.CatalogQuery
	CacheLen() int
	Base() []dataset.Row
}

var _ Engine = (*results.Store)(nil)
