package chart

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
)

func sampleRows() []dataset.Row {
	return []dataset.Row{
		{"productName": "Chai", "unitPrice": 18.0, "unitsInStock": 39.0, "unitsOnOrder": 0.0},
		{"productName": "Chang", "unitPrice": 19.0, "unitsInStock": 17.0, "unitsOnOrder": 40.0},
		{"productName": "Aniseed Syrup", "unitPrice": 10.0, "unitsInStock": 13.0, "unitsOnOrder": 70.0},
		{"productName": "Chef Anton's Cajun Seasoning", "unitPrice": 22.0, "unitsInStock": 53.0, "unitsOnOrder": 0.0},
	}
}

func TestProject_Bar(t *testing.T) {
	d := Project(KindBar, sampleRows())
	assert.Equal(t, KindBar, d.Kind)
	assert.Equal(t, []string{"Chai", "Chang", "Aniseed Syrup", "Chef Anton's Cajun Seasoning"}, d.Labels)
	require.Len(t, d.Series, 1)
	assert.Equal(t, "Unit Price", d.Series[0].Label)
	assert.Equal(t, []float64{18, 19, 10, 22}, d.Series[0].Values)
	assert.False(t, d.Series[0].Fill)
}

func TestProject_AreaIsFilled(t *testing.T) {
	d := Project(KindArea, sampleRows())
	require.Len(t, d.Series, 1)
	assert.True(t, d.Series[0].Fill)
	assert.Len(t, d.Labels, 4)
}

func TestProject_Scatter(t *testing.T) {
	d := Project(KindScatter, sampleRows())
	require.Len(t, d.Series, 1)
	assert.Equal(t, "Unit Price vs Units in Stock", d.Series[0].Label)
	assert.Equal(t, Point{X: 39, Y: 18}, d.Series[0].Points[0])
	assert.Empty(t, d.Labels)
}

func TestProject_RadarUsesFirstThreeRows(t *testing.T) {
	d := Project(KindRadar, sampleRows())
	assert.Equal(t, []string{"Unit Price", "Units in Stock", "Units on Order"}, d.Labels)
	require.Len(t, d.Series, 3)
	assert.Equal(t, "Chang", d.Series[1].Label)
	assert.Equal(t, []float64{19, 17, 40}, d.Series[1].Values)
}

func TestProject_MissingValuesPlotAsZero(t *testing.T) {
	d := Project(KindBar, []dataset.Row{{"productName": "Nameless"}})
	assert.Equal(t, []float64{0}, d.Series[0].Values)
}

func TestProject_Empty(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, Project(k, nil).Empty(), k)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("scatter")
	require.NoError(t, err)
	assert.Equal(t, KindScatter, k)

	_, err = ParseKind("pie")
	assert.Error(t, err)
}

func TestRendererFor(t *testing.T) {
	for _, k := range Kinds() {
		assert.NotNil(t, RendererFor(k), k)
	}
	assert.Nil(t, RendererFor("pie"))
}

func TestRender_FitsBounds(t *testing.T) {
	const width, height = 60, 12
	for _, k := range Kinds() {
		t.Run(string(k), func(t *testing.T) {
			out := Render(Project(k, sampleRows()), width, height)
			lines := strings.Split(out, "\n")
			assert.LessOrEqual(t, len(lines), height)
			for _, l := range lines {
				assert.LessOrEqual(t, ansi.StringWidth(l), width, "line %q", ansi.Strip(l))
			}
		})
	}
}

func TestRender_BarShowsLabelsAndValues(t *testing.T) {
	out := ansi.Strip(Render(Project(KindBar, sampleRows()), 60, 12))
	assert.Contains(t, out, "Unit Price")
	assert.Contains(t, out, "Chai")
	assert.Contains(t, out, "22")
}

func TestRender_BarTruncatesLongList(t *testing.T) {
	rows := dataset.Builtin()
	out := ansi.Strip(Render(Project(KindBar, rows), 60, 10))
	assert.Len(t, strings.Split(out, "\n"), 10)
	assert.Contains(t, out, "more")
}

func TestRender_Empty(t *testing.T) {
	out := Render(Project(KindBar, nil), 40, 10)
	assert.Equal(t, "No data to chart", ansi.Strip(out))
}
