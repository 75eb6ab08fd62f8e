package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// TextView is a scrollable block of pre-rendered text that wraps
// bubbles/viewport. Replacing the content keeps the scroll position when it
// still fits, so re-rendering on resize does not jump back to the top.
type TextView struct {
	vp     viewport.Model
	lines  []string // rendered (pre-styled) lines
	width  int
	height int
}

// NewTextView creates an empty TextView with the given dimensions.
func NewTextView(w, h int) TextView {
	return TextView{
		vp:     viewport.New(w, h),
		width:  w,
		height: h,
	}
}

// SetText replaces the content with s, split on newlines.
func (v TextView) SetText(s string) TextView {
	if s == "" {
		return v.SetLines(nil)
	}
	return v.SetLines(strings.Split(s, "\n"))
}

// SetLines replaces the content with the given slice.
func (v TextView) SetLines(lines []string) TextView {
	v.lines = make([]string, len(lines))
	copy(v.lines, lines)
	v.vp.SetContent(strings.Join(v.lines, "\n"))
	return v
}

// LineCount returns the number of content lines.
func (v TextView) LineCount() int {
	return len(v.lines)
}

// GotoTop scrolls to the first line.
func (v TextView) GotoTop() TextView {
	v.vp.GotoTop()
	return v
}

// SetSize resizes the view to the given dimensions.
func (v TextView) SetSize(w, h int) TextView {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	v.vp.SetContent(strings.Join(v.lines, "\n"))
	return v
}

// Update handles bubbletea messages (scroll keys, mouse events).
func (v TextView) Update(msg tea.Msg) (TextView, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// View renders the visible portion of the content.
func (v TextView) View() string {
	return v.vp.View()
}
