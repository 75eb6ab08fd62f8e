package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/export"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/grid"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/tui/panels"
)

// Options configures the TUI. Zero values are usable.
type Options struct {
	AccentColor  string
	Grid         grid.Config // zero value means grid.TerminalConfig()
	DatasetPath  string      // shown in the header; empty = built-in
	ExportDir    string
	ExportFormat string
	Logger       *slog.Logger
}

// Model is the root bubbletea model for QueryDeck.
type Model struct {
	engine Engine
	opts   Options
	logger *slog.Logger

	// Sub-panels
	sidebar panels.SidebarPanel
	editor  panels.EditorPanel
	results panels.ResultsPanel

	// Layout and focus
	layout     Layout
	focus      FocusTarget
	theme      Theme
	width      int
	height     int
	expanded   bool
	showSchema bool

	// Footer status
	status      string
	statusError bool
}

// New creates the TUI Model over engine. The editor starts focused.
func New(engine Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	gridCfg := opts.Grid
	if gridCfg == (grid.Config{}) {
		gridCfg = grid.TerminalConfig()
	}
	layout := Calculate(80, 24, false)

	sideW, sideH := innerDims(layout.Sidebar)
	edW, edH := innerDims(layout.Editor)
	resW, resH := innerDims(layout.Results)

	m := Model{
		engine:  engine,
		opts:    opts,
		logger:  logger,
		sidebar: panels.NewSidebarPanel(sideW, sideH),
		editor:  panels.NewEditorPanel(edW, edH),
		results: panels.NewResultsPanel(gridCfg, grid.ProductsLayout().Scale(10), resW, resH),
		layout:  layout,
		focus:   FocusEditor,
		theme:   NewTheme(opts.AccentColor),
		width:   80,
		height:  24,
	}
	m.editor, _ = m.editor.Focus()
	return m.refreshSidebar()
}

// Init starts the editor cursor blinking.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Focus returns the panel holding keyboard focus.
func (m Model) Focus() FocusTarget { return m.focus }

// Expanded reports whether the results panel fills the screen.
func (m Model) Expanded() bool { return m.expanded }

// Status returns the footer status text.
func (m Model) Status() string { return m.status }

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.relayout(), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	case panels.RunQueryMsg:
		return m.handleRunQuery(msg)
	case panels.LoadQueryMsg:
		m.editor = m.editor.SetValue(msg.Text)
		return m.setFocus(FocusEditor)
	case panels.ToggleSavedMsg:
		m.engine.ToggleSaved(msg.Text)
		m.status, m.statusError = savedStatus(m.engine.IsSaved(msg.Text)), false
		return m.refreshSidebar(), nil
	case exportDoneMsg:
		if msg.Err != nil {
			m.logger.Error("export failed", "error", msg.Err)
		} else if msg.Path != "" {
			m.logger.Info("results exported", "path", msg.Path)
		}
		if status, isErr := exportStatus(msg.Path, msg.Err); status != "" {
			m.status, m.statusError = status, isErr
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// relayout recomputes panel geometry and resizes every panel. It is the
// only place the grid is re-measured.
func (m Model) relayout() Model {
	m.layout = Calculate(m.width, m.height, m.expanded)
	if m.layout.TooSmall {
		return m
	}
	resW, resH := innerDims(m.layout.Results)
	m.results = m.results.SetSize(resW, resH, m.height, m.expanded)
	if !m.expanded {
		sideW, sideH := innerDims(m.layout.Sidebar)
		edW, edH := innerDims(m.layout.Editor)
		m.sidebar = m.sidebar.SetSize(sideW, sideH)
		m.editor = m.editor.SetSize(edW, edH)
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showSchema {
		if IsOverlayKey(key) {
			m.showSchema = false
		}
		return m, nil
	}

	switch key {
	case "tab":
		if m.expanded {
			return m, nil
		}
		return m.setFocus(m.focus.Next())
	case "shift+tab":
		if m.expanded {
			return m, nil
		}
		return m.setFocus(m.focus.Prev())
	case "ctrl+e":
		m.expanded = !m.expanded
		m = m.relayout()
		if m.expanded {
			return m.setFocus(FocusResults)
		}
		return m, nil
	case "ctrl+o":
		m.showSchema = true
		return m, nil
	case "ctrl+x":
		return m, m.exportCmd()
	}
	return m.delegateToFocused(msg)
}

func (m Model) setFocus(f FocusTarget) (Model, tea.Cmd) {
	m.focus = f
	if f == FocusEditor {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Focus()
		return m, cmd
	}
	m.editor = m.editor.Blur()
	return m, nil
}

func (m Model) delegateToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusSidebar:
		m.sidebar, cmd = m.sidebar.Update(msg)
	case FocusEditor:
		m.editor, cmd = m.editor.Update(msg)
	case FocusResults:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m Model) handleRunQuery(msg panels.RunQueryMsg) (tea.Model, tea.Cmd) {
	before := m.engine.CacheLen()
	rs := m.engine.Execute(msg.Text)
	cached := m.engine.CacheLen() == before

	m.results = m.results.SetResults(rs)
	m.status, m.statusError = runStatus(rs.Len(), cached), false
	m.logger.Debug("query run from editor", "rows", rs.Len(), "cached", cached)
	return m.refreshSidebar(), nil
}

// refreshSidebar reloads the sidebar lists from the engine.
func (m Model) refreshSidebar() Model {
	m.sidebar = m.sidebar.SetQueries(m.engine.Catalog(), m.engine.Saved(), m.engine.History(), m.engine.IsSaved)
	return m
}

// exportCmd writes the current result set in the background. Rows are
// never mutated after execution, so the command may read them off-loop.
func (m Model) exportCmd() tea.Cmd {
	rows := m.results.Results().Rows
	dir, format := m.opts.ExportDir, m.opts.ExportFormat
	if dir == "" {
		dir = "."
	}
	return func() tea.Msg {
		path, err := export.ToFile(dir, format, dataset.Products, rows)
		return exportDoneMsg{Path: path, Err: err}
	}
}

// View renders the full TUI.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least 80x24.", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(tooSmallStyle.Render(msg))
	}

	header := panels.RenderHeader(panels.HeaderProps{
		DatasetPath: m.opts.DatasetPath,
		BaseRows:    len(m.engine.Base()),
		SavedCount:  len(m.engine.Saved()),
		CacheSize:   m.engine.CacheLen(),
		Expanded:    m.expanded,
	}, m.layout.Header.Width, m.theme.AccentHeaderStyle())

	footer := panels.RenderFooter(panels.FooterProps{
		Focus:    m.focus.String(),
		Status:   m.status,
		IsError:  m.statusError,
		Expanded: m.expanded,
	}, m.layout.Footer.Width)

	bodyH := m.height - 2
	var body string
	switch {
	case m.showSchema:
		body = panels.RenderSchema(dataset.Products, m.width, bodyH, m.theme.OverlayStyle())
	case m.expanded:
		body = m.renderResults()
	default:
		sideW, sideH := innerDims(m.layout.Sidebar)
		edW, edH := innerDims(m.layout.Editor)
		sidebar := m.theme.PanelBorderStyle(m.focus == FocusSidebar).
			Width(sideW).Height(sideH).
			Render(m.sidebar.View())
		rightCol := lipgloss.JoinVertical(lipgloss.Left,
			m.theme.PanelBorderStyle(m.focus == FocusEditor).
				Width(edW).Height(edH).
				Render(m.editor.View()),
			m.renderResults(),
		)
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, rightCol)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderResults() string {
	w, h := innerDims(m.layout.Results)
	return m.theme.PanelBorderStyle(m.focus == FocusResults).
		Width(w).Height(h).
		MaxHeight(h + 2).
		Render(m.results.View())
}
