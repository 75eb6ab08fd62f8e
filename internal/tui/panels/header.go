// Package panels provides the panel components for the QueryDeck TUI.
package panels

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderProps holds all data needed to render the header bar.
type HeaderProps struct {
	DatasetPath string // empty = built-in products
	BaseRows    int
	SavedCount  int
	CacheSize   int
	Expanded    bool
}

// AbbreviatePath returns a display-friendly path, replacing the home directory
// with "~" and converting backslashes to forward slashes.
func AbbreviatePath(path string) string {
	if path == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	return strings.ReplaceAll(path, "\\", "/")
}

// RenderHeader renders the header bar.
// accentStyle is applied to the full header bar width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	dataset := "products (built-in)"
	if props.DatasetPath != "" {
		dataset = AbbreviatePath(props.DatasetPath)
	}

	parts := []string{
		"◆ QueryDeck",
		"dataset: " + dataset,
		fmt.Sprintf("rows: %d", props.BaseRows),
		fmt.Sprintf("saved: %d", props.SavedCount),
		fmt.Sprintf("cached: %d", props.CacheSize),
	}
	if props.Expanded {
		parts = append(parts, "EXPANDED")
	}

	content := strings.Join(parts, "  │  ")
	return accentStyle.Width(width).MaxHeight(1).Render(content)
}
