package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
)

func TestCSV_RoundTrip(t *testing.T) {
	rows := []dataset.Row{
		{"productID": 1.0, "productName": `Chef "Anton's", Cajun`, "unitPrice": 22.0, "discontinued": false},
		{"productID": 2.0, "productName": "Line\nBreak", "unitPrice": 21.35, "discontinued": true},
		{"productID": 3.0, "productName": "Plain", "unitPrice": nil, "discontinued": false},
	}
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, dataset.Products, rows))

	out := buf.String()
	assert.False(t, strings.HasSuffix(out, "\n"), "no trailing newline")
	assert.True(t, strings.HasPrefix(out, "productID,productName,unitPrice,discontinued\n"))

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"1", `Chef "Anton's", Cajun`, "22", "false"}, records[1])
	assert.Equal(t, []string{"2", "Line\nBreak", "21.35", "true"}, records[2])
	assert.Equal(t, []string{"3", "Plain", "", "false"}, records[3])
}

func TestCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, CSV(&buf, dataset.Products, nil), ErrEmpty)
	assert.Zero(t, buf.Len())
}

func TestCSV_BuiltinDataset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, dataset.Products, dataset.Builtin()))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 78)
	assert.Equal(t, dataset.Products.Names(), records[0])
}

func TestHeader_ExtraKeysSorted(t *testing.T) {
	rows := []dataset.Row{{"zeta": 1, "unitPrice": 2.0, "alpha": "x", "productID": 1.0}}
	assert.Equal(t, []string{"productID", "unitPrice", "alpha", "zeta"}, Header(dataset.Products, rows))
}

func TestEscapeCSV(t *testing.T) {
	tests := map[string]string{
		"plain":     "plain",
		"a,b":       `"a,b"`,
		`say "hi"`:  `"say ""hi"""`,
		"two\nline": "\"two\nline\"",
		"":          "",
	}
	for in, want := range tests {
		assert.Equal(t, want, escapeCSV(in), "escapeCSV(%q)", in)
	}
}

func TestToFile_CSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	path, err := ToFile(dir, FormatCSV, dataset.Products, dataset.Builtin()[:2])
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "query_results.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestToFile_EmptyIsNoop(t *testing.T) {
	dir := t.TempDir()
	path, err := ToFile(dir, FormatCSV, dataset.Products, nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestToFile_UnknownFormat(t *testing.T) {
	_, err := ToFile(t.TempDir(), "pdf", dataset.Products, dataset.Builtin()[:1])
	assert.Error(t, err)
}

func TestToFile_XLSX(t *testing.T) {
	rows := dataset.Builtin()[:3]
	path, err := ToFile(t.TempDir(), FormatXLSX, dataset.Products, rows)
	require.NoError(t, err)
	assert.Equal(t, "query_results.xlsx", filepath.Base(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, dataset.Products.Names(), got[0])
	assert.Equal(t, rows[0].Cell("productName"), got[1][1])
}

func TestSetCell(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet(sheetName)
	require.NoError(t, err)

	require.NoError(t, setCell(f, 2, 3, 12.5))
	got, err := f.GetCellValue(sheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, "12.5", got)

	err = setCell(f, 0, 1, "x")
	assert.ErrorContains(t, err, "export: xlsx:")
}
