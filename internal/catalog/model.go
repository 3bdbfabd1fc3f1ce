package catalog

import "strings"

// PriceTier names one of the four pricing columns in the sheet.
// Tiers whose column name contains "CON FACT" are invoiced and
// therefore carry tax.
type PriceTier string

const (
	TierStoreInvoice   PriceTier = "PV ALMACEN CON FACT"
	TierWholesale      PriceTier = "PRECIO REMISION AL X MAYOR"
	TierRetail         PriceTier = "PRECIO REMISION AL DETAL"
	TierDistribInvoice PriceTier = "PV DISTRIB CON FACT"
)

func Tiers() []PriceTier {
	return []PriceTier{
		TierStoreInvoice,
		TierWholesale,
		TierRetail,
		TierDistribInvoice,
	}
}

func (t PriceTier) Valid() bool {
	for _, tier := range Tiers() {
		if t == tier {
			return true
		}
	}
	return false
}

func (t PriceTier) TaxInclusive() bool {
	return strings.Contains(string(t), "CON FACT")
}

// Non-price columns of the sheet.
const (
	ColumnProduct     = "PRODUCTO"
	ColumnCategory    = "CATEGORIA"
	ColumnBrand       = "MARCA"
	ColumnImage       = "IMAGEN"
	ColumnDescription = "DESCRIPCION"
)

// EditableColumn reports whether the write path may touch a column.
// Everything except the image link and the description is read-only.
func EditableColumn(column string) bool {
	return column == ColumnImage || column == ColumnDescription
}

type Product struct {
	Name        string                `json:"name"`
	Category    string                `json:"category"`
	Brand       string                `json:"brand"`
	ImageURL    string                `json:"image_url"`
	Description string                `json:"description"`
	Prices      map[PriceTier]float64 `json:"prices"`
}

// Price returns the normalized value for a tier, zero when the
// column was absent from the source.
func (p *Product) Price(tier PriceTier) float64 {
	return p.Prices[tier]
}
