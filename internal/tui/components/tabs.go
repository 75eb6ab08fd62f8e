// Package components holds the widgets the QueryDeck panels are built from.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const tabGap = " · "

var (
	tabOnStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#7D56F4"))
	tabOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Tabs is a one-line selector over a fixed set of labels: the sidebar
// sections, the results modes and the chart kinds. Values are copied on
// every change.
type Tabs struct {
	labels []string
	cur    int
	width  int
}

func NewTabs(labels ...string) Tabs {
	return Tabs{labels: labels}
}

// Active is the index of the selected label.
func (t Tabs) Active() int { return t.cur }

func (t Tabs) Len() int { return len(t.labels) }

// Label returns the selected label, or "" with no labels.
func (t Tabs) Label() string {
	if len(t.labels) == 0 {
		return ""
	}
	return t.labels[t.cur]
}

// SetActive selects label i; an index outside the set leaves Tabs unchanged.
func (t Tabs) SetActive(i int) Tabs {
	if i >= 0 && i < len(t.labels) {
		t.cur = i
	}
	return t
}

// Cycle moves the selection by step, wrapping at both ends.
func (t Tabs) Cycle(step int) Tabs {
	n := len(t.labels)
	if n == 0 {
		return t
	}
	t.cur = ((t.cur+step)%n + n) % n
	return t
}

// SetWidth caps the rendered line; zero means no cap.
func (t Tabs) SetWidth(w int) Tabs {
	t.width = w
	return t
}

func (t Tabs) View() string {
	var b strings.Builder
	for i, l := range t.labels {
		if i > 0 {
			b.WriteString(tabOffStyle.Render(tabGap))
		}
		if i == t.cur {
			b.WriteString(tabOnStyle.Render(l))
		} else {
			b.WriteString(tabOffStyle.Render(l))
		}
	}
	line := b.String()
	if t.width > 0 && ansi.StringWidth(line) > t.width {
		line = ansi.Truncate(line, t.width, "…")
	}
	return line
}
