package grid

import (
	"fmt"
	"testing"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
)

func makeRows(n int) []dataset.Row {
	rows := make([]dataset.Row, n)
	for i := range rows {
		rows[i] = dataset.Row{
			"productID":   float64(i + 1),
			"productName": fmt.Sprintf("Product %d", i+1),
			"unitPrice":   float64(i) + 0.5,
		}
	}
	return rows
}

// pixelConfig windows a 500-high container of 40-high rows with no header.
func pixelConfig() Config {
	cfg := DefaultConfig()
	cfg.HeaderHeight = 0
	return cfg
}

func TestMeasure(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name       string
		container  Size
		viewport   int
		expanded   bool
		wantWidth  int
		wantHeight int
		wantList   int
	}{
		{"compact ignores viewport", Size{1200, 300}, 900, false, 1200, 500, 452},
		{"expanded subtracts chrome", Size{1200, 300}, 900, true, 1200, 740, 692},
		{"expanded tiny viewport floors at zero", Size{800, 0}, 100, true, 800, 0, 0},
		{"negative width floors at zero", Size{-5, 0}, 0, false, 0, 500, 452},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := cfg.Measure(tt.container, tt.viewport, tt.expanded)
			if d.Width != tt.wantWidth {
				t.Errorf("Width: got %d, want %d", d.Width, tt.wantWidth)
			}
			if d.Height != tt.wantHeight {
				t.Errorf("Height: got %d, want %d", d.Height, tt.wantHeight)
			}
			if d.ListHeight() != tt.wantList {
				t.Errorf("ListHeight: got %d, want %d", d.ListHeight(), tt.wantList)
			}
		})
	}
}

func TestComputeWindow(t *testing.T) {
	cfg := pixelConfig()
	tests := []struct {
		name       string
		scroll     int
		rows       int
		list       int
		wantFirst  int
		wantLast   int
		wantTop    int
		wantBottom int
	}{
		{"top", 0, 1000, 500, 0, 15, 0, 985 * 40},
		{"mid-row offset floors", 45, 1000, 500, 1, 16, 40, 984 * 40},
		{"bottom clamps last", 39500, 1000, 500, 987, 1000, 987 * 40, 0},
		{"past the end clamps first", 1 << 30, 1000, 500, 999, 1000, 999 * 40, 0},
		{"negative scroll", -100, 10, 500, 0, 10, 0, 0},
		{"fewer rows than viewport", 0, 3, 500, 0, 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := cfg.ComputeWindow(tt.scroll, tt.rows, tt.list)
			if w.First != tt.wantFirst || w.Last != tt.wantLast {
				t.Errorf("window: got [%d,%d), want [%d,%d)", w.First, w.Last, tt.wantFirst, tt.wantLast)
			}
			if w.TopSpacer != tt.wantTop {
				t.Errorf("TopSpacer: got %d, want %d", w.TopSpacer, tt.wantTop)
			}
			if w.BottomSpacer != tt.wantBottom {
				t.Errorf("BottomSpacer: got %d, want %d", w.BottomSpacer, tt.wantBottom)
			}
			if w.TotalHeight != tt.rows*40 {
				t.Errorf("TotalHeight: got %d, want %d", w.TotalHeight, tt.rows*40)
			}
			if got := w.TopSpacer + w.Count()*40 + w.BottomSpacer; got != w.TotalHeight {
				t.Errorf("spacers + rows = %d, want TotalHeight %d", got, w.TotalHeight)
			}
		})
	}
}

func TestComputeWindow_Empty(t *testing.T) {
	w := pixelConfig().ComputeWindow(0, 0, 500)
	if w.Count() != 0 || w.TotalHeight != 0 {
		t.Errorf("empty window: got %+v", w)
	}
}

func TestComputeWindow_OverscanAtLeastOne(t *testing.T) {
	cfg := pixelConfig()
	cfg.Overscan = 0
	w := cfg.ComputeWindow(0, 100, 400)
	if w.Count() != 11 {
		t.Errorf("Count: got %d, want 11 (10 visible + 1 overscan)", w.Count())
	}
}

func TestGrid_WindowingBound(t *testing.T) {
	cfg := pixelConfig()
	g := New(cfg, ProductsLayout()).
		SetRows(makeRows(1000)).
		Resize(Size{Width: 1200, Height: 500}, 500, false)

	limit := (500+39)/40 + cfg.Overscan

	check := func(label string, g Grid) {
		t.Helper()
		vis := g.Visible()
		if len(vis) > limit {
			t.Errorf("%s: materialized %d rows, limit %d", label, len(vis), limit)
		}
		if len(vis) == 0 {
			t.Errorf("%s: no rows materialized", label)
		}
	}

	check("top", g)
	for i := 0; i < 50; i++ {
		g = g.PageDown()
		check(fmt.Sprintf("page %d", i), g)
	}

	g = g.Bottom()
	check("bottom", g)
	vis := g.Visible()
	last := vis[len(vis)-1]
	if last.Index != 999 {
		t.Errorf("bottom: last visible index %d, want 999", last.Index)
	}
	if last.Cells[1] != "Product 1000" {
		t.Errorf("bottom: last row name %q", last.Cells[1])
	}
	if g.ScrollOffset() != 1000*40-500 {
		t.Errorf("bottom: scroll %d, want %d", g.ScrollOffset(), 1000*40-500)
	}
}

func TestGrid_EmptyRendersNothing(t *testing.T) {
	g := New(pixelConfig(), ProductsLayout()).Resize(Size{800, 500}, 500, false)
	if vis := g.Visible(); len(vis) != 0 {
		t.Errorf("expected no rows, got %d", len(vis))
	}
	g = g.Bottom().PageDown().ScrollBy(5)
	if g.ScrollOffset() != 0 {
		t.Errorf("scroll on empty grid: got %d", g.ScrollOffset())
	}
}

func TestGrid_MissingColumnIsEmptyCell(t *testing.T) {
	g := New(pixelConfig(), ProductsLayout()).
		SetRows([]dataset.Row{{"productName": "Lonely"}}).
		Resize(Size{800, 500}, 500, false)
	vis := g.Visible()
	if len(vis) != 1 {
		t.Fatalf("expected 1 row, got %d", len(vis))
	}
	if vis[0].Cells[0] != "" {
		t.Errorf("missing productID: got %q, want empty", vis[0].Cells[0])
	}
	if vis[0].Cells[1] != "Lonely" {
		t.Errorf("productName: got %q", vis[0].Cells[1])
	}
	if len(vis[0].Cells) != 10 {
		t.Errorf("cells: got %d, want 10", len(vis[0].Cells))
	}
}

func TestGrid_HorizontalScroll(t *testing.T) {
	layout := ProductsLayout()
	if layout.ContentWidth() != 1500 {
		t.Fatalf("ContentWidth: got %d, want 1500", layout.ContentWidth())
	}

	g := New(pixelConfig(), layout).SetRows(makeRows(5)).Resize(Size{800, 500}, 500, false)
	if !g.HorizontalScroll() {
		t.Error("expected horizontal scroll when content is wider than container")
	}
	g = g.ScrollRight(10000)
	if g.HOffset() != 700 {
		t.Errorf("HOffset: got %d, want 700", g.HOffset())
	}
	g = g.ScrollLeft(50)
	if g.HOffset() != 650 {
		t.Errorf("HOffset after left: got %d, want 650", g.HOffset())
	}
	if g.ScrollOffset() != 0 {
		t.Error("horizontal scroll must not move the vertical offset")
	}

	wide := g.Resize(Size{2000, 500}, 500, false)
	if wide.HorizontalScroll() {
		t.Error("no horizontal scroll when container is wider than content")
	}
	if wide.HOffset() != 0 {
		t.Errorf("HOffset after widening: got %d, want 0", wide.HOffset())
	}
}

func TestGrid_ResizeReclamps(t *testing.T) {
	cfg := pixelConfig()
	g := New(cfg, ProductsLayout()).SetRows(makeRows(20)).Resize(Size{800, 500}, 500, false)
	g = g.Bottom()
	if g.ScrollOffset() != 20*40-500 {
		t.Fatalf("bottom: got %d", g.ScrollOffset())
	}
	g = g.Resize(Size{800, 0}, 1000, true) // 840 tall, everything fits
	if g.ScrollOffset() != 0 {
		t.Errorf("after expand: scroll %d, want 0", g.ScrollOffset())
	}
	if !g.Expanded() {
		t.Error("Expanded should be true")
	}
}

func TestGrid_SetRowsResetsScroll(t *testing.T) {
	g := New(pixelConfig(), ProductsLayout()).SetRows(makeRows(100)).Resize(Size{800, 500}, 500, false)
	g = g.ScrollBy(30).ScrollRight(100)
	g = g.SetRows(makeRows(50))
	if g.ScrollOffset() != 0 || g.HOffset() != 0 {
		t.Errorf("SetRows should reset offsets, got %d/%d", g.ScrollOffset(), g.HOffset())
	}
	if g.RowCount() != 50 {
		t.Errorf("RowCount: got %d", g.RowCount())
	}
}

func TestTitleFromName(t *testing.T) {
	tests := map[string]string{
		"unitPrice":       "unit Price",
		"productID":       "product I D",
		"quantityPerUnit": "quantity Per Unit",
		"Name":            "Name",
		"discontinued":    "discontinued",
	}
	for in, want := range tests {
		if got := TitleFromName(in); got != want {
			t.Errorf("TitleFromName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLayout_Scale(t *testing.T) {
	l := ProductsLayout().Scale(10)
	if l.Columns[1].Width != 30 {
		t.Errorf("productName width: got %d, want 30", l.Columns[1].Width)
	}
	if l.ContentWidth() != 150 {
		t.Errorf("ContentWidth: got %d, want 150", l.ContentWidth())
	}
	if ProductsLayout().Columns[1].Width != 300 {
		t.Error("Scale must not mutate the source layout")
	}
}

func TestTerminalConfig_Measure(t *testing.T) {
	cfg := TerminalConfig()
	compact := cfg.Measure(Size{Width: 80}, 40, false)
	if compact.Height != 10 || compact.ListHeight() != 9 {
		t.Errorf("compact: got height %d list %d, want 10 and 9", compact.Height, compact.ListHeight())
	}
	expanded := cfg.Measure(Size{Width: 80}, 40, true)
	if expanded.Height != 34 {
		t.Errorf("expanded: got height %d, want 34", expanded.Height)
	}
	w := cfg.ComputeWindow(0, 100, compact.ListHeight())
	if w.Count() != 9+cfg.Overscan {
		t.Errorf("window count: got %d, want %d", w.Count(), 9+cfg.Overscan)
	}
}
