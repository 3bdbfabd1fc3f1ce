package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLineTotal_WithInvoice(t *testing.T) {
	total := LineTotal(10000, true, 2)

	if !total.Equal(decimal.NewFromInt(23800)) {
		t.Fatalf("expected 23800, got %s", total)
	}
}

func TestLineTotal_WithoutInvoice(t *testing.T) {
	total := LineTotal(5000, false, 3)

	if !total.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("expected 15000, got %s", total)
	}
}

func TestLineTotal_ZeroPrice(t *testing.T) {
	total := LineTotal(0, true, 5)

	if !total.Equal(decimal.Zero) {
		t.Fatalf("expected 0, got %s", total)
	}
}

func TestTax(t *testing.T) {
	if !Tax(10000, false).Equal(decimal.Zero) {
		t.Fatal("tax-free tier should carry no tax")
	}

	if !Tax(10000, true).Equal(decimal.NewFromInt(1900)) {
		t.Fatalf("expected 1900, got %s", Tax(10000, true))
	}
}

func TestSum(t *testing.T) {
	totals := []decimal.Decimal{
		LineTotal(10000, true, 2),
		LineTotal(5000, false, 3),
	}

	grand := Sum(totals)
	if !grand.Equal(decimal.NewFromInt(38800)) {
		t.Fatalf("expected 38800, got %s", grand)
	}

	if !Sum(nil).Equal(decimal.Zero) {
		t.Fatal("empty sum should be zero")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(0), "$ 0"},
		{decimal.NewFromInt(999), "$ 999"},
		{decimal.NewFromInt(10000), "$ 10,000"},
		{decimal.NewFromInt(23800), "$ 23,800"},
		{decimal.NewFromInt(1234567), "$ 1,234,567"},
		{decimal.RequireFromString("23800.4"), "$ 23,800"},
	}

	for _, tc := range cases {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("Format(%s): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
