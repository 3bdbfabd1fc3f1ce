package quote

import (
	"fmt"
	"time"
)

// Meta is the client block printed on a quotation. It is rebuilt for
// every generated document and never stored.
type Meta struct {
	Number      string    `json:"number"`
	ClientName  string    `json:"client_name"`
	ClientTaxID string    `json:"client_tax_id"`
	IssuedAt    time.Time `json:"issued_at"`
}

// Filename is the suggested download name for the exported document.
func (m Meta) Filename() string {
	return fmt.Sprintf("Cotizacion_%s_%s.pdf", m.Number, m.ClientName)
}

// Seller is the identity block printed in the header of every page.
type Seller struct {
	Name    string
	TaxID   string
	Phone   string
	Website string
}
