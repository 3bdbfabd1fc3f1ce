package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jfsc87-wq/cotizador-plastshopp/internal/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

// Archive receives a copy of every generated quotation. Optional.
type Archive interface {
	Upload(ctx context.Context, key, contentType string, body []byte) error
}

type Service struct {
	generator *Generator
	archive   Archive // nil when archiving is off
}

func NewService(generator *Generator, archive Archive) *Service {
	return &Service{generator: generator, archive: archive}
}

// --------------------------------------------------
// Generate the quotation document
// --------------------------------------------------
func (s *Service) Generate(ctx context.Context, meta Meta, items []cart.LineItem) ([]byte, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if meta.IssuedAt.IsZero() {
		meta.IssuedAt = time.Now()
	}

	data, err := s.generator.Render(ctx, meta, items)
	if err != nil {
		return nil, err
	}

	if s.archive != nil {
		key := fmt.Sprintf("quotes/%s.pdf", uuid.New().String())
		if err := s.archive.Upload(ctx, key, "application/pdf", data); err != nil {
			// The client still gets their document.
			logrus.WithError(err).Warn("quotation archive upload failed")
		}
	}

	return data, nil
}
