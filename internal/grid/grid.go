package grid

import "github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"

// VisibleRow is one materialized row.
type VisibleRow struct {
	Index int
	Cells []string
}

// Grid is the scroll state over a row sequence. Rows are held by reference;
// only Visible copies anything, and only for the current window.
type Grid struct {
	cfg      Config
	layout   Layout
	rows     []dataset.Row
	dims     Dimensions
	scroll   int
	hscroll  int
	expanded bool
}

// New returns an empty grid.
func New(cfg Config, layout Layout) Grid {
	return Grid{cfg: cfg, layout: layout}
}

// Config returns the windowing constants.
func (g Grid) Config() Config { return g.cfg }

// Layout returns the column layout.
func (g Grid) Layout() Layout { return g.layout }

// Dimensions returns the last measurement.
func (g Grid) Dimensions() Dimensions { return g.dims }

// Expanded reports whether the last measurement used expanded mode.
func (g Grid) Expanded() bool { return g.expanded }

// RowCount is the number of rows held.
func (g Grid) RowCount() int { return len(g.rows) }

// ScrollOffset is the vertical scroll offset.
func (g Grid) ScrollOffset() int { return g.scroll }

// HOffset is the horizontal scroll offset.
func (g Grid) HOffset() int { return g.hscroll }

// SetRows replaces the row sequence and resets both scroll offsets.
func (g Grid) SetRows(rows []dataset.Row) Grid {
	g.rows = rows
	g.scroll = 0
	g.hscroll = 0
	return g
}

// Resize remeasures the grid and re-clamps the scroll offsets.
func (g Grid) Resize(container Size, viewportHeight int, expanded bool) Grid {
	g.dims = g.cfg.Measure(container, viewportHeight, expanded)
	g.expanded = expanded
	return g.clamp()
}

// Window computes the current viewport window.
func (g Grid) Window() Window {
	return g.cfg.ComputeWindow(g.scroll, len(g.rows), g.dims.ListHeight())
}

// Visible materializes the rows of the current window. A row missing a
// column yields "" for that cell.
func (g Grid) Visible() []VisibleRow {
	if len(g.rows) == 0 {
		return nil
	}
	w := g.Window()
	out := make([]VisibleRow, 0, w.Count())
	for i := w.First; i < w.Last; i++ {
		row := g.rows[i]
		cells := make([]string, len(g.layout.Columns))
		for j, col := range g.layout.Columns {
			cells[j] = dataset.FormatValue(row[col.Name])
		}
		out = append(out, VisibleRow{Index: i, Cells: cells})
	}
	return out
}

// HorizontalScroll reports whether the content is wider than the container.
func (g Grid) HorizontalScroll() bool {
	return g.layout.ContentWidth() > g.dims.Width
}

// ScrollTo sets the vertical offset, clamped.
func (g Grid) ScrollTo(offset int) Grid {
	g.scroll = offset
	return g.clamp()
}

// ScrollBy moves the vertical offset by whole rows.
func (g Grid) ScrollBy(rows int) Grid {
	return g.ScrollTo(g.scroll + rows*g.cfg.RowHeight)
}

// PageDown scrolls one list height down.
func (g Grid) PageDown() Grid {
	return g.ScrollTo(g.scroll + g.pageStep())
}

// PageUp scrolls one list height up.
func (g Grid) PageUp() Grid {
	return g.ScrollTo(g.scroll - g.pageStep())
}

// Top scrolls to the first row.
func (g Grid) Top() Grid { return g.ScrollTo(0) }

// Bottom scrolls so the last row is visible.
func (g Grid) Bottom() Grid {
	return g.ScrollTo(g.cfg.MaxScroll(len(g.rows), g.dims.ListHeight()))
}

// ScrollRight moves the horizontal offset right by n, clamped.
func (g Grid) ScrollRight(n int) Grid {
	g.hscroll += n
	return g.clamp()
}

// ScrollLeft moves the horizontal offset left by n, clamped.
func (g Grid) ScrollLeft(n int) Grid {
	g.hscroll -= n
	return g.clamp()
}

func (g Grid) pageStep() int {
	step := g.dims.ListHeight()
	if step < g.cfg.RowHeight {
		step = g.cfg.RowHeight
	}
	return step
}

func (g Grid) clamp() Grid {
	maxV := g.cfg.MaxScroll(len(g.rows), g.dims.ListHeight())
	if g.scroll > maxV {
		g.scroll = maxV
	}
	if g.scroll < 0 {
		g.scroll = 0
	}
	maxH := g.layout.ContentWidth() - g.dims.Width
	if maxH < 0 {
		maxH = 0
	}
	if g.hscroll > maxH {
		g.hscroll = maxH
	}
	if g.hscroll < 0 {
		g.hscroll = 0
	}
	return g
}
