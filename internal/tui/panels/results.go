package panels

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/chart"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/grid"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/results"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/tui/components"
)

// ViewMode selects how results are presented.
type ViewMode int

const (
	ModeTable ViewMode = iota
	ModeChart
)

// resultsChrome is the title line plus the tab line above the content.
const resultsChrome = 2

var (
	resultsTitleStyle = lipgloss.NewStyle().Bold(true)
	resultsMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

var countPrinter = message.NewPrinter(language.English)

// ResultsPanel shows the current result set as a windowed table or a chart.
type ResultsPanel struct {
	modes components.Tabs
	kinds components.Tabs
	grid  components.GridView
	chart components.TextView
	rs    results.ResultSet

	width          int
	height         int
	viewportHeight int
	expanded       bool
}

// NewResultsPanel creates an empty results panel in table mode.
func NewResultsPanel(cfg grid.Config, layout grid.Layout, w, h int) ResultsPanel {
	kinds := chart.Kinds()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = k.Title()
	}
	p := ResultsPanel{
		modes: components.NewTabs("Table", "Chart"),
		kinds: components.NewTabs(labels...),
		grid:  components.NewGridView(cfg, layout),
		chart: components.NewTextView(w, contentHeight(h)),
	}
	return p.SetSize(w, h, h, false)
}

func contentHeight(h int) int {
	if h <= resultsChrome {
		return 1
	}
	return h - resultsChrome
}

// SetResults shows rs. The grid receives only the first results.PageLimit
// rows; the chart plots all of them.
func (p ResultsPanel) SetResults(rs results.ResultSet) ResultsPanel {
	p.rs = rs
	p.grid = p.grid.SetRows(rs.Head(results.PageLimit))
	p.chart = p.chart.GotoTop()
	return p.renderChart()
}

// Results returns the result set on display.
func (p ResultsPanel) Results() results.ResultSet {
	return p.rs
}

// Mode returns the active view mode.
func (p ResultsPanel) Mode() ViewMode {
	return ViewMode(p.modes.Active())
}

// SetMode switches between table and chart.
func (p ResultsPanel) SetMode(m ViewMode) ResultsPanel {
	p.modes = p.modes.SetActive(int(m))
	return p
}

// ChartKind returns the selected chart kind.
func (p ResultsPanel) ChartKind() chart.Kind {
	return chart.Kinds()[p.kinds.Active()]
}

// Grid returns the grid view, for inspection.
func (p ResultsPanel) Grid() components.GridView {
	return p.grid
}

// Title is the panel heading with the row count.
func (p ResultsPanel) Title() string {
	return countPrinter.Sprintf("Results (%d rows)", p.rs.Len())
}

// SetSize resizes the panel. viewportHeight is the terminal height, which
// the grid uses in expanded mode.
func (p ResultsPanel) SetSize(w, h, viewportHeight int, expanded bool) ResultsPanel {
	p.width = w
	p.height = h
	p.viewportHeight = viewportHeight
	p.expanded = expanded
	p.modes = p.modes.SetWidth(w)
	p.kinds = p.kinds.SetWidth(w)
	p.grid = p.grid.SetSize(w, viewportHeight, expanded)
	p.chart = p.chart.SetSize(w, contentHeight(h))
	return p.renderChart()
}

func (p ResultsPanel) renderChart() ResultsPanel {
	if p.rs.Empty() {
		p.chart = p.chart.SetText("")
		return p
	}
	data := chart.Project(p.ChartKind(), p.rs.Rows)
	p.chart = p.chart.SetText(chart.Render(data, p.width, contentHeight(p.height)))
	return p
}

// Update handles key/mouse messages for the panel.
func (p ResultsPanel) Update(msg tea.Msg) (ResultsPanel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "t":
			return p.SetMode(ModeTable), nil
		case "c":
			return p.SetMode(ModeChart), nil
		case "]":
			if p.Mode() == ModeChart {
				p.kinds = p.kinds.Cycle(1)
				p.chart = p.chart.GotoTop()
				return p.renderChart(), nil
			}
			return p, nil
		case "[":
			if p.Mode() == ModeChart {
				p.kinds = p.kinds.Cycle(-1)
				p.chart = p.chart.GotoTop()
				return p.renderChart(), nil
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	if p.Mode() == ModeChart {
		p.chart, cmd = p.chart.Update(msg)
	} else {
		p.grid, cmd = p.grid.Update(msg)
	}
	return p, cmd
}

// View renders the title, tabs and content.
func (p ResultsPanel) View() string {
	title := resultsTitleStyle.Render(p.Title()) + "   " + p.modes.View()

	var tabs, content string
	switch {
	case p.Mode() == ModeChart && !p.rs.Empty():
		tabs = p.kinds.View()
		content = p.chart.View()
	case p.Mode() == ModeChart:
		tabs = p.kinds.View()
		content = p.grid.View()
	default:
		if p.grid.Grid().HorizontalScroll() {
			tabs = resultsMutedStyle.Render(countPrinter.Sprintf("showing %d of %d rows  ·  h/l to scroll columns",
				p.grid.Grid().RowCount(), p.rs.Len()))
		} else {
			tabs = resultsMutedStyle.Render(countPrinter.Sprintf("showing %d of %d rows",
				p.grid.Grid().RowCount(), p.rs.Len()))
		}
		content = p.grid.View()
	}

	return lipgloss.NewStyle().MaxWidth(p.width).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, tabs, content))
}
