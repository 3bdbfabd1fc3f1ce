package catalog

import (
	"context"
	"sort"
)

// Source is the cached read side of the catalog.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
	Invalidate()
}

// FieldWriter is the single write path to the catalog store.
type FieldWriter interface {
	Update(ctx context.Context, product, column, value string) error
}

type Service struct {
	source  Source
	updater FieldWriter
}

func NewService(source Source, updater FieldWriter) *Service {
	return &Service{source: source, updater: updater}
}

// --------------------------------------------------
// List products, optionally filtered
// --------------------------------------------------
func (s *Service) List(ctx context.Context, category, brand string) ([]Product, error) {
	products, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" && brand == "" {
		return products, nil
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if brand != "" && p.Brand != brand {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// --------------------------------------------------
// Sidebar filters
// --------------------------------------------------
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(products, func(p Product) string { return p.Category }), nil
}

func (s *Service) Brands(ctx context.Context, category string) ([]string, error) {
	products, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	if category != "" {
		inCategory := make([]Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				inCategory = append(inCategory, p)
			}
		}
		products = inCategory
	}

	return distinct(products, func(p Product) string { return p.Brand }), nil
}

func distinct(products []Product, key func(Product) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, p := range products {
		v := key(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// --------------------------------------------------
// Single product lookup
// --------------------------------------------------
func (s *Service) Find(ctx context.Context, name string) (*Product, error) {
	products, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].Name == name {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

// --------------------------------------------------
// Remote field update (the only write path)
// --------------------------------------------------
func (s *Service) UpdateField(ctx context.Context, product, column, value string) error {
	if !EditableColumn(column) {
		return ErrNotEditable
	}

	if _, err := s.Find(ctx, product); err != nil {
		return err
	}

	if err := s.updater.Update(ctx, product, column, value); err != nil {
		return err
	}

	// The store changed; the next read must re-fetch.
	s.source.Invalidate()
	return nil
}

// Refresh drops the cached table unconditionally.
func (s *Service) Refresh() {
	s.source.Invalidate()
}
