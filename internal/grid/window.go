package grid

// Config holds the windowing constants.
type Config struct {
	RowHeight      int // fixed height of one row
	CompactHeight  int // viewport height outside expanded mode
	ExpandedChrome int // space reserved around the grid in expanded mode
	HeaderHeight   int // column header, excluded from the row list
	Overscan       int // rows rendered past the visible area
}

// DefaultConfig returns the pixel constants of the browser layout.
func DefaultConfig() Config {
	return Config{
		RowHeight:      40,
		CompactHeight:  500,
		ExpandedChrome: 160,
		HeaderHeight:   48,
		Overscan:       2,
	}
}

// TerminalConfig returns the same constants in terminal lines. Expanded
// chrome covers the header, footer, panel border and results title rows.
func TerminalConfig() Config {
	return Config{
		RowHeight:      1,
		CompactHeight:  10,
		ExpandedChrome: 6,
		HeaderHeight:   1,
		Overscan:       2,
	}
}

// Size is a measured container size.
type Size struct {
	Width, Height int
}

// Dimensions is the result of one measurement pass.
type Dimensions struct {
	Width        int
	Height       int
	HeaderHeight int
}

// ListHeight is the height available to rows below the header.
func (d Dimensions) ListHeight() int {
	h := d.Height - d.HeaderHeight
	if h < 0 {
		return 0
	}
	return h
}

// Measure derives the grid dimensions from the container and the surrounding
// viewport. Expanded mode uses the viewport height minus the chrome; compact
// mode uses the flat CompactHeight regardless of the container.
func (c Config) Measure(container Size, viewportHeight int, expanded bool) Dimensions {
	h := c.CompactHeight
	if expanded {
		h = viewportHeight - c.ExpandedChrome
	}
	if h < 0 {
		h = 0
	}
	w := container.Width
	if w < 0 {
		w = 0
	}
	return Dimensions{Width: w, Height: h, HeaderHeight: c.HeaderHeight}
}

// Window is the slice of rows intersecting the viewport, [First, Last).
// Spacers stand in for the rows outside it so TotalHeight stays
// rowCount*RowHeight.
type Window struct {
	First           int
	Last            int
	ContainerHeight int
	RowHeight       int
	TopSpacer       int
	BottomSpacer    int
	TotalHeight     int
}

// Count is the number of materialized rows.
func (w Window) Count() int { return w.Last - w.First }

// ComputeWindow returns the window for scrollOffset over rowCount rows in a
// list of listHeight.
func (c Config) ComputeWindow(scrollOffset, rowCount, listHeight int) Window {
	w := Window{ContainerHeight: listHeight, RowHeight: c.RowHeight}
	if rowCount <= 0 || c.RowHeight <= 0 {
		return w
	}
	w.TotalHeight = rowCount * c.RowHeight

	if scrollOffset < 0 {
		scrollOffset = 0
	}
	first := scrollOffset / c.RowHeight
	if first > rowCount-1 {
		first = rowCount - 1
	}
	overscan := c.Overscan
	if overscan < 1 {
		overscan = 1
	}
	count := ceilDiv(listHeight, c.RowHeight) + overscan
	last := first + count
	if last > rowCount {
		last = rowCount
	}

	w.First = first
	w.Last = last
	w.TopSpacer = first * c.RowHeight
	w.BottomSpacer = (rowCount - last) * c.RowHeight
	return w
}

// MaxScroll is the largest valid scroll offset.
func (c Config) MaxScroll(rowCount, listHeight int) int {
	m := rowCount*c.RowHeight - listHeight
	if m < 0 {
		return 0
	}
	return m
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
