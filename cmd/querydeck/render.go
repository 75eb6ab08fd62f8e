package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/export"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/journal"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/results"
)

// renderRows writes rows in the requested format.
func renderRows(w io.Writer, schema dataset.Schema, rows []dataset.Row, format string) error {
	switch format {
	case "json":
		if rows == nil {
			rows = []dataset.Row{}
		}
		return renderJSON(w, rows)
	case "csv":
		if len(rows) == 0 {
			return nil
		}
		if err := export.CSV(w, schema, rows); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	case "md", "markdown":
		rowsTable(w, schema, rows).RenderMarkdown()
		return nil
	case "table", "":
		if len(rows) == 0 {
			_, _ = fmt.Fprintln(w, "(0 rows)")
			return nil
		}
		rowsTable(w, schema, rows).Render()
		_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rows))
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table, json, csv or md)", format)
	}
}

func rowsTable(w io.Writer, schema dataset.Schema, rows []dataset.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(tableStyle())

	cols := export.Header(schema, rows)
	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	t.AppendHeader(header)

	var configs []table.ColumnConfig
	for _, c := range schema {
		if c.Type == "number" {
			configs = append(configs, table.ColumnConfig{Name: c.Name, Align: text.AlignRight})
		}
	}
	t.SetColumnConfigs(configs)

	for _, r := range rows {
		row := make(table.Row, len(cols))
		for i, c := range cols {
			row[i] = r.Cell(c)
		}
		t.AppendRow(row)
	}
	return t
}

// tableStyle is StyleLight with headers printed as given.
func tableStyle() table.Style {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	return style
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderSchema prints the column table.
func renderSchema(w io.Writer, schema dataset.Schema) {
	_, _ = fmt.Fprintln(w, "Table: products")
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(tableStyle())
	t.AppendHeader(table.Row{"Column", "Type", "Sample"})
	for _, c := range schema {
		t.AppendRow(table.Row{c.Name, c.Type, c.Sample})
	}
	t.Render()
}

// renderSaved prints the saved queries with their sidebar labels.
func renderSaved(w io.Writer, saved []string) {
	if len(saved) == 0 {
		_, _ = fmt.Fprintln(w, "No saved queries.")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(tableStyle())
	t.AppendHeader(table.Row{"#", "Label", "Query"})
	for i, q := range saved {
		t.AppendRow(table.Row{i + 1, results.Label(q), q})
	}
	t.Render()
}

// renderJournal prints journal entries, oldest first.
func renderJournal(w io.Writer, entries []journal.Entry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No queries recorded yet.")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(tableStyle())
	t.AppendHeader(table.Row{"Time", "Query", "Match", "Rows"})
	t.SetColumnConfigs([]table.ColumnConfig{{Name: "Rows", Align: text.AlignRight}})
	for _, e := range entries {
		match := "fallback"
		if e.Matched {
			match = e.Catalog
		}
		t.AppendRow(table.Row{e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Query, match, e.Rows})
	}
	t.Render()
}
