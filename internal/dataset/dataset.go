// Package dataset holds the row model, the fixed products schema, and the
// base dataset every query resolves against.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
)

//go:embed products.json
var productsJSON []byte

// Row is one record: column name → scalar value (string, float64 or bool).
// Rows are treated as immutable once decoded.
type Row map[string]any

// Column describes one schema column.
type Column struct {
	Name   string
	Type   string // "number", "string", "boolean"
	Sample string
}

// Schema is the ordered list of columns every Row conforms to.
type Schema []Column

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Products is the schema of the base products table.
var Products = Schema{
	{Name: "productID", Type: "number", Sample: "1"},
	{Name: "productName", Type: "string", Sample: "Chai"},
	{Name: "supplierID", Type: "number", Sample: "1"},
	{Name: "categoryID", Type: "number", Sample: "1"},
	{Name: "quantityPerUnit", Type: "string", Sample: "10 boxes x 20 bags"},
	{Name: "unitPrice", Type: "number", Sample: "18.00"},
	{Name: "unitsInStock", Type: "number", Sample: "39"},
	{Name: "unitsOnOrder", Type: "number", Sample: "0"},
	{Name: "reorderLevel", Type: "number", Sample: "10"},
	{Name: "discontinued", Type: "boolean", Sample: "0"},
}

var builtin = sync.OnceValues(func() ([]Row, error) {
	return Decode(productsJSON)
})

// Builtin returns the embedded products dataset. The slice is shared; callers
// must not modify it.
func Builtin() []Row {
	rows, err := builtin()
	if err != nil {
		// The embedded file is part of the binary; a decode failure is a build defect.
		panic(fmt.Sprintf("dataset: embedded products.json: %v", err))
	}
	return rows
}

// Load reads a JSON array of objects from path. An empty path returns the
// embedded dataset.
func Load(path string) ([]Row, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	rows, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return rows, nil
}

// Decode parses a JSON array of flat objects into rows.
func Decode(data []byte) ([]Row, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	rows := make([]Row, len(raw))
	for i, obj := range raw {
		if obj == nil {
			return nil, fmt.Errorf("decode rows: element %d is not an object", i)
		}
		rows[i] = Row(obj)
	}
	return rows, nil
}

// FormatValue coerces a scalar to its display string. nil renders empty.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Cell returns the display string for col, or "" when the row lacks it.
func (r Row) Cell(col string) string {
	return FormatValue(r[col])
}

// Number returns the numeric value of col. Booleans count as 0/1 and numeric
// strings are parsed; anything else reports false.
func (r Row) Number(col string) (float64, bool) {
	switch x := r[col].(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}
