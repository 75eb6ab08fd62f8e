// Package config parses querydeck.toml configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by Load.
const FileName = "querydeck.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// DefaultDataDir holds persisted state, the journal and the TUI log.
const DefaultDataDir = ".querydeck"

// ErrNotFound is returned by Load when no config file exists up the tree.
var ErrNotFound = errors.New("config: " + FileName + " not found")

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level querydeck.toml configuration.
type Config struct {
	Dataset DatasetConfig `toml:"dataset"`
	Storage StorageConfig `toml:"storage"`
	Grid    GridConfig    `toml:"grid"`
	Export  ExportConfig  `toml:"export"`
	TUI     TUIConfig     `toml:"tui"`
	Journal JournalConfig `toml:"journal"`
	Log     LogConfig     `toml:"log"`

	// Dir is the directory of the loaded file; relative paths resolve
	// against it. Empty when running on defaults.
	Dir string `toml:"-"`
}

// DatasetConfig selects the base dataset.
type DatasetConfig struct {
	Path string `toml:"path"` // JSON array of products; empty = built-in
}

// StorageConfig selects the persistence backend for saved queries.
type StorageConfig struct {
	Backend string `toml:"backend"` // file, badger or memory
	Dir     string `toml:"dir"`
}

// GridConfig holds the result grid windowing constants, in terminal lines.
type GridConfig struct {
	RowHeight      int `toml:"row_height"`
	CompactHeight  int `toml:"compact_height"`
	ExpandedChrome int `toml:"expanded_chrome"`
	HeaderHeight   int `toml:"header_height"`
	Overscan       int `toml:"overscan"`
}

// ExportConfig controls result export.
type ExportConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"` // csv or xlsx
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// JournalConfig controls the execution journal.
type JournalConfig struct {
	Enabled    bool `toml:"enabled"`
	MaxEntries int  `toml:"max_entries"` // 0 = unlimited
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn or error
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Backend {
	case "file", "badger", "memory":
	default:
		errs = append(errs, fmt.Errorf("storage.backend must be one of file, badger, memory (got %q)", c.Storage.Backend))
	}
	if c.Storage.Backend != "memory" && c.Storage.Dir == "" {
		errs = append(errs, fmt.Errorf("storage.dir must not be empty"))
	}

	if c.Grid.RowHeight < 1 {
		errs = append(errs, fmt.Errorf("grid.row_height must be >= 1"))
	}
	if c.Grid.CompactHeight < 1 {
		errs = append(errs, fmt.Errorf("grid.compact_height must be >= 1"))
	}
	if c.Grid.ExpandedChrome < 0 {
		errs = append(errs, fmt.Errorf("grid.expanded_chrome must be >= 0"))
	}
	if c.Grid.HeaderHeight < 0 {
		errs = append(errs, fmt.Errorf("grid.header_height must be >= 0"))
	}
	if c.Grid.Overscan < 1 {
		errs = append(errs, fmt.Errorf("grid.overscan must be >= 1"))
	}

	switch c.Export.Format {
	case "csv", "xlsx":
	default:
		errs = append(errs, fmt.Errorf("export.format must be csv or xlsx (got %q)", c.Export.Format))
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	if c.Journal.MaxEntries < 0 {
		errs = append(errs, fmt.Errorf("journal.max_entries must be >= 0 (0 = unlimited)"))
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with the values used when no file is present.
func Defaults() Config {
	return Config{
		Storage: StorageConfig{
			Backend: "file",
			Dir:     DefaultDataDir,
		},
		Grid: GridConfig{
			RowHeight:      1,
			CompactHeight:  10,
			ExpandedChrome: 6,
			HeaderHeight:   1,
			Overscan:       2,
		},
		Export: ExportConfig{
			Dir:    ".",
			Format: "csv",
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
		Journal: JournalConfig{
			Enabled:    true,
			MaxEntries: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Resolve returns p made absolute against the config file's directory.
// Absolute and empty paths are returned unchanged.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// ParseLevel maps a log.level value to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level must be debug, info, warn or error (got %q)", s)
}

// Load reads querydeck.toml from the given path. If path is empty, it walks
// up from the current working directory looking for querydeck.toml and
// returns ErrNotFound when there is none. Returns an error if the file
// contains unknown keys (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	cfg.Dir = filepath.Dir(abs)

	return &cfg, nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for querydeck.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched up from %s)", ErrNotFound, dir)
		}
		dir = parent
	}
}

// InitFile writes a default querydeck.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# querydeck.toml: QueryDeck configuration

[dataset]
path = ""  # JSON array of products; empty = built-in Northwind products

[storage]
backend = "file"     # file, badger or memory
dir = ".querydeck"   # saved queries, journal and logs

[grid]
row_height = 1
compact_height = 10   # grid lines, header included, outside expanded mode
expanded_chrome = 6   # lines reserved around the grid in expanded mode
header_height = 1
overscan = 2

[export]
dir = "."
format = "csv"  # csv or xlsx

[tui]
accent_color = "#7D56F4"  # hex color for header/accent elements

[journal]
enabled = true
max_entries = 1000  # 0 = unlimited

[log]
level = "info"  # debug, info, warn or error
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
