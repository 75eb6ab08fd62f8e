package components

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/grid"
)

// EmptyGridText is shown when the grid holds no rows.
const EmptyGridText = "Run a query to see results"

// hStep is how many cells h/l scroll horizontally.
const hStep = 10

var (
	gridHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	gridEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	scrollTrack     = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")).Render("│")
	scrollThumb     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("┃")
)

// GridView renders a grid.Grid as terminal text: a header row, the rows of
// the current window, and a one-column scrollbar on the right. Only the
// window's rows are formatted on each render.
type GridView struct {
	grid  grid.Grid
	width int
}

// NewGridView creates an empty GridView.
func NewGridView(cfg grid.Config, layout grid.Layout) GridView {
	return GridView{grid: grid.New(cfg, layout)}
}

// Grid returns the underlying scroll state.
func (v GridView) Grid() grid.Grid {
	return v.grid
}

// SetRows replaces the rows and scrolls back to the top-left.
func (v GridView) SetRows(rows []dataset.Row) GridView {
	v.grid = v.grid.SetRows(rows)
	return v
}

// SetSize measures the grid for a panel of width w. viewportHeight is the
// full terminal height, used in expanded mode.
func (v GridView) SetSize(w, viewportHeight int, expanded bool) GridView {
	v.width = w
	content := w - 1 // scrollbar
	if content < 0 {
		content = 0
	}
	v.grid = v.grid.Resize(grid.Size{Width: content}, viewportHeight, expanded)
	return v
}

// Height is the number of lines View renders.
func (v GridView) Height() int {
	return v.grid.Dimensions().Height
}

// Update handles scroll keys and the mouse wheel.
func (v GridView) Update(msg tea.Msg) (GridView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			v.grid = v.grid.ScrollBy(1)
		case "k", "up":
			v.grid = v.grid.ScrollBy(-1)
		case "pgdown", "ctrl+d", " ":
			v.grid = v.grid.PageDown()
		case "pgup", "ctrl+u":
			v.grid = v.grid.PageUp()
		case "g", "home":
			v.grid = v.grid.Top()
		case "G", "end":
			v.grid = v.grid.Bottom()
		case "l", "right":
			v.grid = v.grid.ScrollRight(hStep)
		case "h", "left":
			v.grid = v.grid.ScrollLeft(hStep)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			v.grid = v.grid.ScrollBy(3)
		case tea.MouseButtonWheelUp:
			v.grid = v.grid.ScrollBy(-3)
		case tea.MouseButtonWheelRight:
			v.grid = v.grid.ScrollRight(hStep)
		case tea.MouseButtonWheelLeft:
			v.grid = v.grid.ScrollLeft(hStep)
		}
	}
	return v, nil
}

// View renders the grid.
func (v GridView) View() string {
	dims := v.grid.Dimensions()
	if v.grid.RowCount() == 0 {
		return gridEmptyStyle.
			Width(v.width).Height(dims.Height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(EmptyGridText)
	}

	cfg := v.grid.Config()
	layout := v.grid.Layout()
	content := dims.Width
	hoff := v.grid.HOffset()

	lines := make([]string, 0, dims.Height)

	titles := make([]string, len(layout.Columns))
	for i, c := range layout.Columns {
		titles[i] = c.Title
	}
	for i := 0; i < dims.HeaderHeight; i++ {
		text := ""
		if i == 0 {
			text = cutLine(formatRow(layout, titles), hoff, content)
		} else {
			text = strings.Repeat(" ", content)
		}
		lines = append(lines, gridHeaderStyle.Render(text)+" ")
	}

	// Lines of the window as if the spacers were present, then the slice the
	// scroll offset selects.
	win := v.grid.Window()
	var body []string
	for _, row := range v.grid.Visible() {
		body = append(body, cutLine(formatRow(layout, row.Cells), hoff, content))
		for i := 1; i < cfg.RowHeight; i++ {
			body = append(body, strings.Repeat(" ", content))
		}
	}
	skip := v.grid.ScrollOffset() - win.TopSpacer
	if skip > len(body) {
		skip = len(body)
	}
	if skip > 0 {
		body = body[skip:]
	}

	listH := dims.ListHeight()
	bar := scrollbar(v.grid.ScrollOffset(), win.TotalHeight, listH)
	for i := 0; i < listH; i++ {
		line := strings.Repeat(" ", content)
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, line+bar[i])
	}
	return strings.Join(lines, "\n")
}

// formatRow lays cells out at their column widths and alignments.
func formatRow(layout grid.Layout, cells []string) string {
	var b strings.Builder
	for i, col := range layout.Columns {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		b.WriteString(formatCell(text, col.Width, col.Align))
	}
	return b.String()
}

// formatCell renders text into exactly width cells, the last one a gap.
func formatCell(text string, width int, align grid.Align) string {
	if width <= 1 {
		return strings.Repeat(" ", max(width, 0))
	}
	text = strings.Map(flattenControl, text)
	text = ansi.Truncate(text, width-1, "…")
	pos := lipgloss.Left
	switch align {
	case grid.AlignRight:
		pos = lipgloss.Right
	case grid.AlignCenter:
		pos = lipgloss.Center
	}
	return lipgloss.NewStyle().Width(width-1).Align(pos).Render(text) + " "
}

// flattenControl keeps a cell on one line of fixed width.
func flattenControl(r rune) rune {
	if unicode.IsControl(r) {
		return ' '
	}
	return r
}

// cutLine returns the width cells of line starting at offset, padded.
func cutLine(line string, offset, width int) string {
	out := ansi.Cut(line, offset, offset+width)
	if gap := width - ansi.StringWidth(out); gap > 0 {
		out += strings.Repeat(" ", gap)
	}
	return out
}

// scrollbar returns one rendered cell per list line.
func scrollbar(offset, total, listH int) []string {
	bar := make([]string, listH)
	if total <= listH || listH <= 0 {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}
	thumb := max(1, listH*listH/total)
	maxScroll := total - listH
	top := offset * (listH - thumb) / maxScroll
	for i := range bar {
		if i >= top && i < top+thumb {
			bar[i] = scrollThumb
		} else {
			bar[i] = scrollTrack
		}
	}
	return bar
}
