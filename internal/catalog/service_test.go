package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// --------------------------------------------------
// Mock source and writer
// --------------------------------------------------

type mockSource struct {
	products    []Product
	err         error
	invalidated int
}

func (m *mockSource) Load(ctx context.Context) ([]Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockSource) Invalidate() {
	m.invalidated++
}

type mockWriter struct {
	err   error
	calls int
}

func (m *mockWriter) Update(ctx context.Context, product, column, value string) error {
	m.calls++
	return m.err
}

func testProducts() []Product {
	return []Product{
		{Name: "Bolsa 20x30", Category: "Bolsas", Brand: "Acme"},
		{Name: "Bolsa 30x40", Category: "Bolsas", Brand: "Rival"},
		{Name: "Vaso 7oz", Category: "Vasos", Brand: "Acme"},
	}
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestList_Filters(t *testing.T) {
	service := NewService(&mockSource{products: testProducts()}, &mockWriter{})

	all, err := service.List(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}

	bolsas, _ := service.List(context.Background(), "Bolsas", "")
	if len(bolsas) != 2 {
		t.Fatalf("expected 2 bolsas, got %d", len(bolsas))
	}

	acmeBolsas, _ := service.List(context.Background(), "Bolsas", "Acme")
	if len(acmeBolsas) != 1 || acmeBolsas[0].Name != "Bolsa 20x30" {
		t.Fatalf("unexpected filter result: %+v", acmeBolsas)
	}
}

func TestCategoriesAndBrands(t *testing.T) {
	service := NewService(&mockSource{products: testProducts()}, &mockWriter{})

	categories, _ := service.Categories(context.Background())
	if !reflect.DeepEqual(categories, []string{"Bolsas", "Vasos"}) {
		t.Fatalf("expected sorted unique categories, got %v", categories)
	}

	brands, _ := service.Brands(context.Background(), "")
	if !reflect.DeepEqual(brands, []string{"Acme", "Rival"}) {
		t.Fatalf("expected sorted unique brands, got %v", brands)
	}

	vasoBrands, _ := service.Brands(context.Background(), "Vasos")
	if !reflect.DeepEqual(vasoBrands, []string{"Acme"}) {
		t.Fatalf("expected brands scoped to category, got %v", vasoBrands)
	}
}

func TestFind(t *testing.T) {
	service := NewService(&mockSource{products: testProducts()}, &mockWriter{})

	p, err := service.Find(context.Background(), "Vaso 7oz")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Brand != "Acme" {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, err := service.Find(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateField_InvalidatesCacheOnSuccess(t *testing.T) {
	source := &mockSource{products: testProducts()}
	writer := &mockWriter{}
	service := NewService(source, writer)

	err := service.UpdateField(context.Background(), "Vaso 7oz", ColumnDescription, "Vaso desechable")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if writer.calls != 1 {
		t.Fatalf("expected one bridge call, got %d", writer.calls)
	}
	if source.invalidated != 1 {
		t.Fatal("a successful write must invalidate the cache")
	}
}

func TestUpdateField_FailureLeavesCache(t *testing.T) {
	source := &mockSource{products: testProducts()}
	writer := &mockWriter{err: errors.New("bridge down")}
	service := NewService(source, writer)

	err := service.UpdateField(context.Background(), "Vaso 7oz", ColumnImage, "http://x")
	if err == nil {
		t.Fatal("expected error from the bridge")
	}
	if source.invalidated != 0 {
		t.Fatal("a failed write must leave the cache untouched")
	}
}

func TestUpdateField_RejectsNonEditableColumn(t *testing.T) {
	writer := &mockWriter{}
	service := NewService(&mockSource{products: testProducts()}, writer)

	err := service.UpdateField(context.Background(), "Vaso 7oz", ColumnProduct, "Renamed")
	if !errors.Is(err, ErrNotEditable) {
		t.Fatalf("expected ErrNotEditable, got %v", err)
	}
	if writer.calls != 0 {
		t.Fatal("non-editable column must never reach the bridge")
	}
}

func TestUpdateField_UnknownProduct(t *testing.T) {
	service := NewService(&mockSource{products: testProducts()}, &mockWriter{})

	err := service.UpdateField(context.Background(), "missing", ColumnImage, "http://x")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPriceTier(t *testing.T) {
	if !TierStoreInvoice.TaxInclusive() || !TierDistribInvoice.TaxInclusive() {
		t.Fatal("CON FACT tiers must carry tax")
	}
	if TierWholesale.TaxInclusive() || TierRetail.TaxInclusive() {
		t.Fatal("remision tiers must not carry tax")
	}
	if PriceTier("PRECIO INVENTADO").Valid() {
		t.Fatal("unknown tier should be invalid")
	}
}
