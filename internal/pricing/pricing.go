package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TaxRate applies to the "with invoice" price tiers only.
var TaxRate = decimal.RequireFromString("0.19")

// Tax returns the tax amount for one unit, zero for tax-free tiers.
func Tax(unitPrice float64, taxInclusive bool) decimal.Decimal {
	if !taxInclusive {
		return decimal.Zero
	}
	return decimal.NewFromFloat(unitPrice).Mul(TaxRate)
}

// LineTotal is (unitPrice + tax) * quantity at full precision.
// Rounding happens only at display time, in Format.
func LineTotal(unitPrice float64, taxInclusive bool, quantity int) decimal.Decimal {
	unit := decimal.NewFromFloat(unitPrice)
	return unit.Add(Tax(unitPrice, taxInclusive)).Mul(decimal.NewFromInt(int64(quantity)))
}

// Sum adds line totals into a grand total.
func Sum(lineTotals []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, t := range lineTotals {
		total = total.Add(t)
	}
	return total
}

// Format renders a money value the way it appears in the quotation:
// zero decimals, thousands commas, leading currency marker ("$ 23,800").
func Format(d decimal.Decimal) string {
	s := d.Round(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	b.WriteString("$ ")
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
