package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/config"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/grid"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/journal"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/kv"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/results"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/tui"
)

// logFileName is the TUI log inside the data dir. The TUI owns stdout and
// stderr, so diagnostics go to a file while it runs.
const logFileName = "querydeck.log"

// badgerSubdir keeps badger's files apart from the journal and log.
const badgerSubdir = "badger"

// app holds everything a command needs, opened in dependency order and
// closed in reverse.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	kv      kv.Store
	journal *journal.JSONL
	store   *results.Store
	closers []io.Closer
}

// loadConfig loads querydeck.toml, falling back to defaults when no file
// exists and no explicit path was given.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrNotFound) {
		d := config.Defaults()
		cfg, err = &d, nil
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// newLogger builds the slog logger at the configured level. verbose forces
// debug.
func newLogger(w io.Writer, level string, verbose bool) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// openApp wires config → logger → KV → journal → result store. Log output
// goes to logOut.
func openApp(flags *globalFlags, logOut io.Writer) (*app, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(logOut, cfg.Log.Level, flags.verbose)
	if err != nil {
		return nil, err
	}
	return openAppWith(cfg, logger)
}

func openAppWith(cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	base := dataset.Builtin()
	if cfg.Dataset.Path != "" {
		rows, err := dataset.Load(cfg.Resolve(cfg.Dataset.Path))
		if err != nil {
			return nil, err
		}
		base = rows
	}

	dataDir := cfg.Resolve(cfg.Storage.Dir)
	kvDir := dataDir
	if cfg.Storage.Backend == kv.BackendBadger {
		kvDir = filepath.Join(dataDir, badgerSubdir)
	}
	store, err := kv.Open(cfg.Storage.Backend, kvDir)
	if err != nil {
		return nil, err
	}
	a.kv = store
	a.closers = append(a.closers, store)

	var onExecute func(results.Execution)
	if cfg.Journal.Enabled && dataDir != "" {
		j, err := journal.Open(dataDir, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		if err := j.Trim(cfg.Journal.MaxEntries); err != nil {
			logger.Warn("journal trim failed", "error", err)
		}
		a.journal = j
		a.closers = append(a.closers, j)
		onExecute = func(e results.Execution) {
			entry := journal.Entry{
				Timestamp: time.Now().UTC(),
				Query:     e.Query,
				Matched:   e.Matched,
				Catalog:   e.Catalog,
				Rows:      e.Rows,
			}
			if err := j.Append(entry); err != nil {
				logger.Warn("journal append failed", "error", err)
			}
		}
	}

	a.store = results.New(base, store, results.Options{
		Logger:    logger,
		OnExecute: onExecute,
	})
	logger.Debug("querydeck ready",
		"rows", len(base),
		"backend", cfg.Storage.Backend,
		"data_dir", dataDir,
		"saved", len(a.store.Saved()))
	return a, nil
}

// Close releases resources in reverse open order.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}

// openLogFile opens the TUI log in the data dir, or discards output when
// there is no data dir.
func openLogFile(cfg *config.Config) (io.WriteCloser, error) {
	dir := cfg.Resolve(cfg.Storage.Dir)
	if dir == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// runTUI launches the interactive explorer.
func runTUI(flags *globalFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	logFile, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, cfg.Log.Level, flags.verbose)
	if err != nil {
		return err
	}
	a, err := openAppWith(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	model := tui.New(a.store, tuiOptions(cfg, logger))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// tuiOptions maps configuration onto the TUI's options.
func tuiOptions(cfg *config.Config, logger *slog.Logger) tui.Options {
	return tui.Options{
		AccentColor:  cfg.TUI.AccentColor,
		Grid:         gridConfig(cfg.Grid),
		DatasetPath:  cfg.Resolve(cfg.Dataset.Path),
		ExportDir:    cfg.Resolve(cfg.Export.Dir),
		ExportFormat: cfg.Export.Format,
		Logger:       logger,
	}
}

func gridConfig(g config.GridConfig) grid.Config {
	return grid.Config{
		RowHeight:      g.RowHeight,
		CompactHeight:  g.CompactHeight,
		ExpandedChrome: g.ExpandedChrome,
		HeaderHeight:   g.HeaderHeight,
		Overscan:       g.Overscan,
	}
}
