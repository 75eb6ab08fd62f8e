package tui

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/grid"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		tooSmall bool
		sidebarW int
		rightW   int
		bodyH    int
		resultsH int
	}{
		{
			name:     "80x24 minimum viable",
			width:    80, height: 24,
			sidebarW: 24, // 80*25/100=20 → clamped to 24
			rightW:   56,
			bodyH:    22,
			resultsH: 14, // 22 - 8
		},
		{
			name:     "120x40",
			width:    120, height: 40,
			sidebarW: 30,
			rightW:   90,
			bodyH:    38,
			resultsH: 30,
		},
		{
			name:     "200x60",
			width:    200, height: 60,
			sidebarW: 35, // 200*25/100=50 → clamped to max 35
			rightW:   165,
			bodyH:    58,
			resultsH: 50,
		},
		{
			name:     "79x24 too small (width)",
			width:    79, height: 24,
			tooSmall: true,
		},
		{
			name:     "80x23 too small (height)",
			width:    80, height: 23,
			tooSmall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height, false)
			if l.TooSmall != tt.tooSmall {
				t.Fatalf("TooSmall: got %v, want %v", l.TooSmall, tt.tooSmall)
			}
			if tt.tooSmall {
				return
			}

			if l.Header != (Rect{0, 0, tt.width, 1}) {
				t.Errorf("Header: got %+v", l.Header)
			}
			if l.Footer != (Rect{0, tt.height - 1, tt.width, 1}) {
				t.Errorf("Footer: got %+v", l.Footer)
			}
			if l.Sidebar != (Rect{0, 1, tt.sidebarW, tt.bodyH}) {
				t.Errorf("Sidebar: got %+v", l.Sidebar)
			}
			if l.Editor != (Rect{tt.sidebarW, 1, tt.rightW, editorHeight}) {
				t.Errorf("Editor: got %+v", l.Editor)
			}
			if l.Results != (Rect{tt.sidebarW, 1 + editorHeight, tt.rightW, tt.resultsH}) {
				t.Errorf("Results: got %+v", l.Results)
			}
			if l.Sidebar.Width+l.Results.Width != tt.width {
				t.Errorf("columns do not fill the width")
			}
			if l.Editor.Height+l.Results.Height != tt.bodyH {
				t.Errorf("right column does not fill the body")
			}
		})
	}
}

func TestCalculate_Expanded(t *testing.T) {
	l := Calculate(100, 30, true)
	if l.TooSmall {
		t.Fatal("100x30 should not be too small")
	}
	if !l.Expanded {
		t.Error("Expanded flag should be set")
	}
	if l.Results != (Rect{0, 1, 100, 28}) {
		t.Errorf("Results: got %+v, want full body", l.Results)
	}
	if !l.Sidebar.Empty() || !l.Editor.Empty() {
		t.Errorf("sidebar and editor should be hidden: %+v %+v", l.Sidebar, l.Editor)
	}
}

func TestCalculate_ExpandedGridFillsPanel(t *testing.T) {
	// The panel's content height must equal what the grid measures in
	// expanded mode: terminal height minus the configured chrome.
	for _, h := range []int{24, 40, 61} {
		l := Calculate(100, h, true)
		_, inner := innerDims(l.Results)
		content := inner - 2 // results title + tab line
		want := h - grid.TerminalConfig().ExpandedChrome
		if content != want {
			t.Errorf("height %d: panel content %d, grid %d", h, content, want)
		}
	}
}

func TestInnerDims(t *testing.T) {
	tests := []struct {
		r    Rect
		w, h int
	}{
		{Rect{Width: 10, Height: 5}, 8, 3},
		{Rect{Width: 2, Height: 2}, 1, 1},
		{Rect{}, 1, 1},
	}
	for _, tt := range tests {
		w, h := innerDims(tt.r)
		if w != tt.w || h != tt.h {
			t.Errorf("innerDims(%+v) = %d,%d want %d,%d", tt.r, w, h, tt.w, tt.h)
		}
	}
}
