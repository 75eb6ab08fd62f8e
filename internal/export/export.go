// Package export writes result rows to CSV or XLSX files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
)

// Supported formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// BaseName is the file name, without extension, of every export.
const BaseName = "query_results"

const sheetName = "Results"

// ErrEmpty is returned when there are no rows to export.
var ErrEmpty = errors.New("export: no rows")

// Header returns the export columns: the keys of the first row, ordered by
// schema position, with keys unknown to the schema appended alphabetically.
func Header(schema dataset.Schema, rows []dataset.Row) []string {
	if len(rows) == 0 {
		return nil
	}
	first := rows[0]
	var cols []string
	known := make(map[string]bool, len(schema))
	for _, c := range schema {
		known[c.Name] = true
		if _, ok := first[c.Name]; ok {
			cols = append(cols, c.Name)
		}
	}
	var extra []string
	for k := range first {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(cols, extra...)
}

// CSV writes rows as comma-separated text. Lines are joined with "\n" and
// there is no trailing newline.
func CSV(w io.Writer, schema dataset.Schema, rows []dataset.Row) error {
	if len(rows) == 0 {
		return ErrEmpty
	}
	header := Header(schema, rows)
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(header, ","))
	fields := make([]string, len(header))
	for _, r := range rows {
		for i, col := range header {
			fields[i] = escapeCSV(dataset.FormatValue(r[col]))
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("export: csv: %w", err)
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}

// XLSX writes rows to a single-sheet workbook at path. Numbers and booleans
// keep their cell types.
func XLSX(path string, schema dataset.Schema, rows []dataset.Row) error {
	if len(rows) == 0 {
		return ErrEmpty
	}
	header := Header(schema, rows)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}
	for i, col := range header {
		if err := setCell(f, i+1, 1, col); err != nil {
			return err
		}
	}
	for i, r := range rows {
		rowNum := i + 2
		for j, col := range header {
			v, ok := r[col]
			if !ok || v == nil {
				continue
			}
			if err := setCell(f, j+1, rowNum, v); err != nil {
				return err
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: xlsx: save %s: %w", path, err)
	}
	return nil
}

// setCell writes v at the 1-based (col, row) coordinate of the sheet.
func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}
	if err := f.SetCellValue(sheetName, cell, v); err != nil {
		return fmt.Errorf("export: xlsx: %s: %w", cell, err)
	}
	return nil
}

// ToFile writes rows to dir/query_results.<format>. Empty rows are a no-op
// and return "" with a nil error.
func ToFile(dir, format string, schema dataset.Schema, rows []dataset.Row) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}

	switch format {
	case FormatCSV, "":
		path := filepath.Join(dir, BaseName+".csv")
		f, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("export: create %s: %w", path, err)
		}
		if err := CSV(f, schema, rows); err != nil {
			f.Close()
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("export: close %s: %w", path, err)
		}
		return path, nil

	case FormatXLSX:
		path := filepath.Join(dir, BaseName+".xlsx")
		if err := XLSX(path, schema, rows); err != nil {
			return "", err
		}
		return path, nil

	default:
		return "", fmt.Errorf("export: unknown format %q", format)
	}
}
