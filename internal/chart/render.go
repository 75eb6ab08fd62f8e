package chart

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Renderer draws chart data into a width×height block of terminal text.
type Renderer interface {
	Render(d Data, width, height int) string
}

var (
	seriesColors = []lipgloss.Color{"#4BC0C0", "#FFA54F", "#7D56F4"}
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func seriesStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(seriesColors[i%len(seriesColors)])
}

var (
	registryOnce sync.Once
	registry     map[Kind]Renderer
)

// RendererFor returns the renderer for kind, or nil for an unknown kind.
// Renderers are built on first use.
func RendererFor(kind Kind) Renderer {
	registryOnce.Do(func() {
		registry = map[Kind]Renderer{
			KindBar:     barRenderer{},
			KindScatter: scatterRenderer{},
			KindArea:    areaRenderer{},
			KindRadar:   radarRenderer{},
		}
	})
	return registry[kind]
}

// Render draws d with the renderer registered for d.Kind.
func Render(d Data, width, height int) string {
	if d.Empty() {
		return emptyStyle.Render("No data to chart")
	}
	r := RendererFor(d.Kind)
	if r == nil {
		return emptyStyle.Render(fmt.Sprintf("Unsupported chart kind %q", d.Kind))
	}
	return r.Render(d, max(width, 20), max(height, 4))
}

// barRenderer draws one horizontal bar per label.
type barRenderer struct{}

func (barRenderer) Render(d Data, width, height int) string {
	s := d.Series[0]
	rows := min(len(s.Values), len(d.Labels), height-1)
	labelW := min(longest(d.Labels[:rows]), width/3)
	maxV := maxOf(s.Values)
	barW := width - labelW - 12
	if barW < 1 {
		barW = 1
	}

	lines := []string{seriesStyle(0).Render("■ ") + s.Label}
	for i := 0; i < rows; i++ {
		n := scale(s.Values[i], maxV, barW)
		label := padRight(ansi.Truncate(d.Labels[i], labelW, "…"), labelW)
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			label,
			axisStyle.Render("│"),
			seriesStyle(0).Render(strings.Repeat("█", n)),
			formatNum(s.Values[i])))
	}
	if hidden := len(s.Values) - rows; hidden > 0 {
		lines[len(lines)-1] = axisStyle.Render(fmt.Sprintf("… %d more", hidden+1))
	}
	return strings.Join(lines, "\n")
}

// scatterRenderer plots points on a character canvas.
type scatterRenderer struct{}

func (scatterRenderer) Render(d Data, width, height int) string {
	pts := d.Series[0].Points
	plotW := width - 2
	plotH := height - 3

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	canvas := make([][]rune, plotH)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", plotW))
	}
	for _, p := range pts {
		col := position(p.X, minX, maxX, plotW)
		row := plotH - 1 - position(p.Y, minY, maxY, plotH)
		canvas[row][col] = '•'
	}

	lines := []string{seriesStyle(0).Render("• ") + d.Series[0].Label}
	for _, r := range canvas {
		lines = append(lines, axisStyle.Render("│")+seriesStyle(0).Render(string(r)))
	}
	lines = append(lines, axisStyle.Render("└"+strings.Repeat("─", plotW)))
	lines = append(lines, axisStyle.Render(fmt.Sprintf("x %s–%s  y %s–%s",
		formatNum(minX), formatNum(maxX), formatNum(minY), formatNum(maxY))))
	return strings.Join(lines, "\n")
}

// areaRenderer draws filled columns, one per label, left to right.
type areaRenderer struct{}

func (areaRenderer) Render(d Data, width, height int) string {
	s := d.Series[0]
	cols := min(len(s.Values), width-2)
	plotH := height - 3
	maxV := maxOf(s.Values)

	heights := make([]int, cols)
	for i := range heights {
		heights[i] = scale(s.Values[i], maxV, plotH)
	}

	lines := []string{seriesStyle(0).Render("▇ ") + s.Label}
	for row := plotH; row >= 1; row-- {
		var b strings.Builder
		for _, h := range heights {
			switch {
			case h >= row:
				b.WriteRune('█')
			default:
				b.WriteRune(' ')
			}
		}
		lines = append(lines, axisStyle.Render("│")+seriesStyle(0).Render(b.String()))
	}
	lines = append(lines, axisStyle.Render("└"+strings.Repeat("─", cols)))
	footer := fmt.Sprintf("%d points  max %s", cols, formatNum(maxV))
	if cols < len(s.Values) {
		footer += fmt.Sprintf("  (%d not shown)", len(s.Values)-cols)
	}
	lines = append(lines, axisStyle.Render(footer))
	return strings.Join(lines, "\n")
}

// radarRenderer lists each axis with one bar per series, scaled to the
// largest value across all series.
type radarRenderer struct{}

func (radarRenderer) Render(d Data, width, height int) string {
	var all []float64
	for _, s := range d.Series {
		all = append(all, s.Values...)
	}
	maxV := maxOf(all)
	labelW := longest(d.Labels)
	barW := width - labelW - 12
	if barW < 1 {
		barW = 1
	}

	var legend []string
	for i, s := range d.Series {
		legend = append(legend, seriesStyle(i).Render("◆ ")+s.Label)
	}
	lines := []string{strings.Join(legend, "  ")}
	for a, axis := range d.Labels {
		for i, s := range d.Series {
			if len(lines) >= height {
				break
			}
			v := 0.0
			if a < len(s.Values) {
				v = s.Values[a]
			}
			name := ""
			if i == 0 {
				name = axis
			}
			lines = append(lines, fmt.Sprintf("%s %s %s %s",
				padRight(name, labelW),
				axisStyle.Render("│"),
				seriesStyle(i).Render(strings.Repeat("█", scale(v, maxV, barW))),
				formatNum(v)))
		}
	}
	return strings.Join(lines, "\n")
}

func scale(v, maxV float64, width int) int {
	if maxV <= 0 || v <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Round(v / maxV * float64(width)))
	return min(max(n, 1), width)
}

func position(v, lo, hi float64, size int) int {
	if size <= 1 || hi <= lo {
		return 0
	}
	p := int((v - lo) / (hi - lo) * float64(size-1))
	return min(max(p, 0), size-1)
}

func maxOf(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

func longest(ss []string) int {
	n := 0
	for _, s := range ss {
		n = max(n, lipgloss.Width(s))
	}
	return n
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func formatNum(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
