// Package grid is the windowed table engine: it measures the container,
// computes which rows intersect the viewport, and materializes cell text only
// for those rows. It knows nothing about terminals; units are whatever the
// caller measures in (pixels, terminal cells).
package grid

import "strings"

// Align is a column's text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// Column is one fixed-width grid column.
type Column struct {
	Name  string
	Title string
	Width int
	Align Align
}

// Layout is the static column layout of a grid.
type Layout struct {
	Columns []Column
}

// NewLayout builds a Layout, deriving a Title from Name where empty.
func NewLayout(cols ...Column) Layout {
	out := make([]Column, len(cols))
	for i, c := range cols {
		if c.Title == "" {
			c.Title = TitleFromName(c.Name)
		}
		out[i] = c
	}
	return Layout{Columns: out}
}

// ContentWidth is the sum of all column widths.
func (l Layout) ContentWidth() int {
	total := 0
	for _, c := range l.Columns {
		total += c.Width
	}
	return total
}

// Names returns the column names in order.
func (l Layout) Names() []string {
	names := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		names[i] = c.Name
	}
	return names
}

// TitleFromName inserts a space before every upper-case letter and trims the
// result: "unitPrice" → "unit Price", "productID" → "product I D".
func TitleFromName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// ProductsLayout is the products table layout in browser pixel units.
func ProductsLayout() Layout {
	return NewLayout(
		Column{Name: "productID", Width: 100, Align: AlignLeft},
		Column{Name: "productName", Width: 300, Align: AlignLeft},
		Column{Name: "supplierID", Width: 120, Align: AlignRight},
		Column{Name: "categoryID", Width: 120, Align: AlignRight},
		Column{Name: "quantityPerUnit", Width: 220, Align: AlignLeft},
		Column{Name: "unitPrice", Width: 120, Align: AlignRight},
		Column{Name: "unitsInStock", Width: 120, Align: AlignRight},
		Column{Name: "unitsOnOrder", Width: 140, Align: AlignRight},
		Column{Name: "reorderLevel", Width: 140, Align: AlignRight},
		Column{Name: "discontinued", Width: 120, Align: AlignCenter},
	)
}

// Scale returns a copy of l with every width divided by div (min 1). The TUI
// uses it to turn pixel widths into terminal cells.
func (l Layout) Scale(div int) Layout {
	if div <= 1 {
		return l
	}
	out := make([]Column, len(l.Columns))
	for i, c := range l.Columns {
		c.Width /= div
		if c.Width < 1 {
			c.Width = 1
		}
		out[i] = c
	}
	return Layout{Columns: out}
}
