package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jfsc87-wq/cotizador-plastshopp/internal/pricing"
)

// LineItem is a snapshot of a product at the moment it was added.
// The total is computed once, at add time; later catalog edits or
// price changes never touch an existing line.
type LineItem struct {
	Product      string          `json:"product"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	UnitPrice    float64         `json:"unit_price"`
	TaxInclusive bool            `json:"tax_inclusive"`
	Total        decimal.Decimal `json:"total"`
	ImageURL     string          `json:"image_url"`
}

// Cart is an ordered sequence of line items; insertion order is the
// display and document order. Items leave only through Clear.
type Cart struct {
	items []LineItem
}

func (c *Cart) Add(item LineItem) {
	c.items = append(c.items, item)
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []LineItem {
	return c.items
}

func (c *Cart) GrandTotal() decimal.Decimal {
	totals := make([]decimal.Decimal, len(c.items))
	for i, item := range c.items {
		totals[i] = item.Total
	}
	return pricing.Sum(totals)
}
