// Package tui provides the bubbletea + lipgloss terminal UI for QueryDeck.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

var (
	colorGray = lipgloss.Color("#888888")
	colorRed  = lipgloss.Color("#FF6B6B")
)

var (
	tooSmallStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)

var statusPrinter = message.NewPrinter(language.English)

// runStatus is the footer status after a query executes.
func runStatus(rows int, cached bool) string {
	s := statusPrinter.Sprintf("query returned %d rows", rows)
	if cached {
		s += " (cached)"
	}
	return s
}

// savedStatus is the footer status after toggling a query.
func savedStatus(saved bool) string {
	if saved {
		return "query saved"
	}
	return "query removed from saved"
}

// exportStatus is the footer status after an export.
func exportStatus(path string, err error) (string, bool) {
	if err != nil {
		return fmt.Sprintf("export failed: %v", err), true
	}
	if path == "" {
		return "", false
	}
	return "exported to " + path, false
}
