package panels

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
)

var schemaHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var schemaCellStyle = lipgloss.NewStyle().Padding(0, 1)

// RenderSchema renders the schema overlay: a titled table of the columns,
// their types and a sample value, centered in a width×height box.
func RenderSchema(schema dataset.Schema, width, height int, border lipgloss.Style) string {
	rows := make([][]string, len(schema))
	for i, c := range schema {
		rows[i] = []string{c.Name, c.Type, c.Sample}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))).
		Headers("Column", "Type", "Sample").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return schemaHeaderStyle
			}
			return schemaCellStyle
		})

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("Table Schema: products"),
		"",
		t.Render(),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("esc or ctrl+o to close"),
	)
	box := border.Padding(0, 2).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
