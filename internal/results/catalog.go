package results

import "github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"

// CatalogQuery is one recognized query shape. Text is compared verbatim
// against the trimmed query; Filter selects the rows of its result.
type CatalogQuery struct {
	Name   string
	Text   string
	Filter func(dataset.Row) bool // nil selects every row
}

// Catalog query texts.
const (
	QueryAll          = "SELECT * FROM products;"
	QueryDiscontinued = "SELECT * FROM products WHERE discontinued = 1;"
	QueryExpensive    = "SELECT * FROM products WHERE unitPrice > 50;"
)

// DefaultCatalog returns the built-in quick-filter queries over the products
// dataset.
func DefaultCatalog() []CatalogQuery {
	return []CatalogQuery{
		{Name: "All Products", Text: QueryAll},
		{
			Name: "Discontinued Products",
			Text: QueryDiscontinued,
			Filter: func(r dataset.Row) bool {
				v, ok := r.Number("discontinued")
				return ok && v == 1
			},
		},
		{
			Name: "High Price Items",
			Text: QueryExpensive,
			Filter: func(r dataset.Row) bool {
				v, ok := r.Number("unitPrice")
				return ok && v > 50
			},
		},
	}
}

// compiled is a catalog query with its precomputed rows.
type compiled struct {
	query CatalogQuery
	rows  []dataset.Row
}

func compile(base []dataset.Row, catalog []CatalogQuery) map[string]compiled {
	out := make(map[string]compiled, len(catalog))
	for _, q := range catalog {
		if _, dup := out[q.Text]; dup {
			continue
		}
		rows := base
		if q.Filter != nil {
			rows = make([]dataset.Row, 0, len(base))
			for _, r := range base {
				if q.Filter(r) {
					rows = append(rows, r)
				}
			}
		}
		out[q.Text] = compiled{query: q, rows: rows}
	}
	return out
}
