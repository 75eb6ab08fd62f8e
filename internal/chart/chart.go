// Package chart projects result rows into library-agnostic series data and
// renders that data for the terminal.
package chart

import (
	"fmt"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
)

// Kind tags the chart variant.
type Kind string

const (
	KindBar     Kind = "bar"
	KindScatter Kind = "scatter"
	KindArea    Kind = "area"
	KindRadar   Kind = "radar"
)

// radarSeriesLimit is how many rows the radar chart plots.
const radarSeriesLimit = 3

// Kinds returns every chart kind in display order.
func Kinds() []Kind {
	return []Kind{KindBar, KindScatter, KindArea, KindRadar}
}

// Title is the kind's display label.
func (k Kind) Title() string {
	switch k {
	case KindBar:
		return "Bar"
	case KindScatter:
		return "Scatter"
	case KindArea:
		return "Area"
	case KindRadar:
		return "Radar"
	default:
		return string(k)
	}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("chart: unknown kind %q", s)
}

// Point is one x/y sample.
type Point struct {
	X, Y float64
}

// Series is one labelled data series. Categorical kinds use Values (aligned
// with Data.Labels); scatter uses Points.
type Series struct {
	Label  string
	Values []float64
	Points []Point
	Fill   bool
}

// Data is the projection of a result set for one chart kind.
type Data struct {
	Kind   Kind
	Labels []string
	Series []Series
}

// Empty reports whether there is nothing to plot.
func (d Data) Empty() bool {
	for _, s := range d.Series {
		if len(s.Values) > 0 || len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// Project maps rows to chart data for kind. Missing or non-numeric values
// plot as zero.
func Project(kind Kind, rows []dataset.Row) Data {
	switch kind {
	case KindBar, KindArea:
		labels := make([]string, len(rows))
		values := make([]float64, len(rows))
		for i, r := range rows {
			labels[i] = r.Cell("productName")
			values[i] = num(r, "unitPrice")
		}
		return Data{
			Kind:   kind,
			Labels: labels,
			Series: []Series{{Label: "Unit Price", Values: values, Fill: kind == KindArea}},
		}

	case KindScatter:
		points := make([]Point, len(rows))
		for i, r := range rows {
			points[i] = Point{X: num(r, "unitsInStock"), Y: num(r, "unitPrice")}
		}
		return Data{
			Kind:   kind,
			Series: []Series{{Label: "Unit Price vs Units in Stock", Points: points}},
		}

	case KindRadar:
		n := len(rows)
		if n > radarSeriesLimit {
			n = radarSeriesLimit
		}
		series := make([]Series, n)
		for i, r := range rows[:n] {
			series[i] = Series{
				Label:  r.Cell("productName"),
				Values: []float64{num(r, "unitPrice"), num(r, "unitsInStock"), num(r, "unitsOnOrder")},
				Fill:   true,
			}
		}
		return Data{
			Kind:   kind,
			Labels: []string{"Unit Price", "Units in Stock", "Units on Order"},
			Series: series,
		}
	}
	return Data{Kind: kind}
}

func num(r dataset.Row, col string) float64 {
	v, _ := r.Number(col)
	return v
}
