package catalog

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("product not found")
	ErrNotEditable = errors.New("column is not editable")
)

// Repository loads the full product table from its source.
type Repository interface {
	Load(ctx context.Context) ([]Product, error)
}
