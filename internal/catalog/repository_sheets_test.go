package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1.500", 1500},
		{"$ 1,500", 1500},
		{"12000", 12000},
		{"$12.000,00", 1200000},
		{" 3.500 ", 3500},
		{"", 0},
		{"N/A", 0},
		{"abc", 0},
		{"$-500", 0},
	}

	for _, tc := range cases {
		if got := NormalizePrice(tc.in); got != tc.want {
			t.Errorf("NormalizePrice(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

const sampleCSV = `"PRODUCTO "," CATEGORIA","MARCA","IMAGEN","DESCRIPCION","PV ALMACEN CON FACT","PRECIO REMISION AL X MAYOR","PRECIO REMISION AL DETAL"
"Bolsa 20x30","Bolsas","Acme","http://img.test/bolsa.jpg","Paquete x100","$10.000","$8.000","$9.000"
"Vaso 7oz","Vasos","","","","N/A","$2.500","$3.000"
"","Bolsas","Acme","","","$1.000","$1.000","$1.000"
`

func TestSheetRepository_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	repo := NewSheetRepository(srv.URL)
	products, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// The nameless row is dropped.
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	bolsa := products[0]
	if bolsa.Name != "Bolsa 20x30" || bolsa.Category != "Bolsas" {
		t.Fatalf("unexpected first product: %+v", bolsa)
	}
	if bolsa.Price(TierStoreInvoice) != 10000 {
		t.Fatalf("expected normalized price 10000, got %v", bolsa.Price(TierStoreInvoice))
	}

	vaso := products[1]
	if vaso.Price(TierStoreInvoice) != 0 {
		t.Fatalf("malformed price cell should normalize to 0, got %v", vaso.Price(TierStoreInvoice))
	}

	// PV DISTRIB CON FACT is absent from the source entirely.
	if _, ok := bolsa.Prices[TierDistribInvoice]; ok {
		t.Fatal("absent price column should be skipped, not zero-filled")
	}
}

func TestSheetRepository_Load_SourceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := NewSheetRepository(srv.URL)
	products, err := repo.Load(context.Background())
	if err == nil {
		t.Fatal("expected an error from a failing source")
	}
	if products != nil {
		t.Fatal("a failed load must yield no data")
	}
}

func TestSheetRepository_Load_Unreachable(t *testing.T) {
	repo := NewSheetRepository("http://127.0.0.1:1/catalog.csv")

	if _, err := repo.Load(context.Background()); err == nil {
		t.Fatal("expected a transport error")
	}
}
