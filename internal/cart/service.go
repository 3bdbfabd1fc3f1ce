package cart

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/jfsc87-wq/cotizador-plastshopp/internal/catalog"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/pricing"
)

// Catalog is the read side the cart needs: product lookup by name.
type Catalog interface {
	Find(ctx context.Context, name string) (*catalog.Product, error)
}

type Service struct {
	store   *Store
	catalog Catalog
}

func NewService(store *Store, catalog Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

// --------------------------------------------------
// Add a product to the session cart
// --------------------------------------------------
func (s *Service) Add(
	ctx context.Context,
	sessionID string,
	productName string,
	tier catalog.PriceTier,
	quantity int,
) (*LineItem, error) {

	if quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}
	if !tier.Valid() {
		return nil, errors.Errorf("unknown price tier %q", tier)
	}

	product, err := s.catalog.Find(ctx, productName)
	if err != nil {
		return nil, err
	}

	unit := product.Price(tier)
	taxInclusive := tier.TaxInclusive()

	item := LineItem{
		Product:      product.Name,
		Description:  product.Description,
		Quantity:     quantity,
		UnitPrice:    unit,
		TaxInclusive: taxInclusive,
		Total:        pricing.LineTotal(unit, taxInclusive, quantity),
		ImageURL:     product.ImageURL,
	}

	s.store.Get(sessionID).Add(item)
	return &item, nil
}

func (s *Service) Items(sessionID string) []LineItem {
	return s.store.Get(sessionID).Items()
}

func (s *Service) Clear(sessionID string) {
	s.store.Get(sessionID).Clear()
}

func (s *Service) GrandTotal(sessionID string) decimal.Decimal {
	return s.store.Get(sessionID).GrandTotal()
}
