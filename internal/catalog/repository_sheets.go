package catalog

import (
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
)

const loadTimeout = 15 * time.Second

// SheetRepository reads the catalog from a spreadsheet CSV export URL.
type SheetRepository struct {
	url    string
	client *http.Client
}

func NewSheetRepository(url string) *SheetRepository {
	return &SheetRepository{
		url:    url,
		client: &http.Client{Timeout: loadTimeout},
	}
}

func (r *SheetRepository) Load(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building catalog request")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching catalog")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("catalog source returned %s", resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parsing catalog csv")
	}
	if len(records) == 0 {
		return nil, errors.New("catalog source returned no header row")
	}

	return parseRows(records), nil
}

// --------------------------------------------------
// CSV → Product rows
// --------------------------------------------------
func parseRows(records [][]string) []Product {
	// Header names arrive with stray whitespace.
	col := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		col[strings.TrimSpace(h)] = i
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	products := make([]Product, 0, len(records)-1)
	for _, row := range records[1:] {
		name := field(row, ColumnProduct)
		if name == "" {
			continue
		}

		p := Product{
			Name:        name,
			Category:    field(row, ColumnCategory),
			Brand:       field(row, ColumnBrand),
			ImageURL:    field(row, ColumnImage),
			Description: field(row, ColumnDescription),
			Prices:      make(map[PriceTier]float64, 4),
		}

		for _, tier := range Tiers() {
			if _, ok := col[string(tier)]; !ok {
				// Price columns absent from the source are skipped.
				continue
			}
			p.Prices[tier] = NormalizePrice(field(row, string(tier)))
		}

		products = append(products, p)
	}
	return products
}

// NormalizePrice turns a currency-formatted cell ("$ 1.500,00") into a
// plain number by dropping the decoration and parsing what remains.
// Malformed or negative values normalize to zero; a bad cell never
// fails the row.
func NormalizePrice(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '$' || r == ',' || r == '.':
			return -1
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, raw)

	if cleaned == "" {
		return 0
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
