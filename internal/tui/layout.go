package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rect occupies no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Layout holds the computed panel geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Sidebar        Rect
	Editor         Rect
	Results        Rect
	Expanded       bool
	TooSmall       bool // true when terminal is below the minimum 80×24
}

// editorHeight is the editor panel's outer height, borders included.
const editorHeight = 8

// Calculate computes the panel layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true if width < 80 or height < 24.
//
// Algorithm:
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Sidebar: 25% of width, clamped to [24, 35], full body height
//   - Editor: remaining width × 8 rows (top-right)
//   - Results: remaining width × remaining body height (bottom-right)
//
// When expanded, the sidebar and editor are hidden and Results fills the body.
func Calculate(width, height int, expanded bool) Layout {
	if width < 80 || height < 24 {
		return Layout{TooSmall: true, Expanded: expanded}
	}

	bodyH := height - 2 // subtract header + footer rows

	l := Layout{
		Header:   Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer:   Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		Expanded: expanded,
	}

	if expanded {
		l.Results = Rect{X: 0, Y: 1, Width: width, Height: bodyH}
		return l
	}

	sidebarW := width * 25 / 100
	if sidebarW < 24 {
		sidebarW = 24
	}
	if sidebarW > 35 {
		sidebarW = 35
	}
	rightW := width - sidebarW

	l.Sidebar = Rect{X: 0, Y: 1, Width: sidebarW, Height: bodyH}
	l.Editor = Rect{X: sidebarW, Y: 1, Width: rightW, Height: editorHeight}
	l.Results = Rect{X: sidebarW, Y: 1 + editorHeight, Width: rightW, Height: bodyH - editorHeight}
	return l
}

// innerDims returns the content dimensions for a panel rect accounting for
// the 1-character border on each side (2 total per dimension).
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
