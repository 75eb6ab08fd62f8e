package panels

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunQueryMsg is emitted when the user runs the editor contents.
type RunQueryMsg struct{ Text string }

// EditorPlaceholder is shown while the editor is empty.
const EditorPlaceholder = "-- Enter your SQL query here\nSELECT * FROM products;"

var editorTitleStyle = lipgloss.NewStyle().Bold(true)

// EditorPanel is the query editor: a titled multi-line textarea.
type EditorPanel struct {
	ta     textarea.Model
	width  int
	height int
}

// NewEditorPanel creates an empty, unfocused editor.
func NewEditorPanel(w, h int) EditorPanel {
	ta := textarea.New()
	ta.Placeholder = EditorPlaceholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	p := EditorPanel{ta: ta}
	return p.SetSize(w, h)
}

// Value returns the editor text verbatim.
func (p EditorPanel) Value() string {
	return p.ta.Value()
}

// SetValue replaces the editor text.
func (p EditorPanel) SetValue(s string) EditorPanel {
	p.ta.SetValue(s)
	return p
}

// Focused reports whether the textarea has focus.
func (p EditorPanel) Focused() bool {
	return p.ta.Focused()
}

// Focus gives the textarea keyboard focus.
func (p EditorPanel) Focus() (EditorPanel, tea.Cmd) {
	cmd := p.ta.Focus()
	return p, cmd
}

// Blur removes keyboard focus.
func (p EditorPanel) Blur() EditorPanel {
	p.ta.Blur()
	return p
}

// SetSize resizes the panel. One line is reserved for the title.
func (p EditorPanel) SetSize(w, h int) EditorPanel {
	p.width = w
	p.height = h
	p.ta.SetWidth(w)
	th := h - 1
	if th < 1 {
		th = 1
	}
	p.ta.SetHeight(th)
	return p
}

// Update handles key messages. alt+enter and ctrl+r run the query instead of
// inserting a newline; ctrl+l clears the editor.
func (p EditorPanel) Update(msg tea.Msg) (EditorPanel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "alt+enter", "ctrl+r":
			text := p.ta.Value()
			return p, func() tea.Msg { return RunQueryMsg{Text: text} }
		case "ctrl+l":
			p.ta.Reset()
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.ta, cmd = p.ta.Update(msg)
	return p, cmd
}

// View renders the title line and the textarea.
func (p EditorPanel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		editorTitleStyle.Render("Query Editor"),
		p.ta.View(),
	)
}
