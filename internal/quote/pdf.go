package quote

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jfsc87-wq/cotizador-plastshopp/internal/cart"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/pricing"
)

// Item table geometry, in mm on an A4 portrait page.
const (
	colPhoto  = 30.0
	colDetail = 75.0
	colQty    = 15.0
	colUnit   = 35.0
	colTotal  = 35.0

	headerRowHeight = 10.0
	itemRowHeight   = 25.0

	// Rows may not run into the footer block.
	contentBottom = 270.0

	maxNameChars = 60
	maxDescChars = 180
)

// Brand accent used for the header rule and company name.
var brandColor = struct{ r, g, b int }{0, 160, 208}

// Generator renders a cart plus client metadata into a paginated
// quotation PDF. It never mutates the cart.
type Generator struct {
	seller Seller
	images ImageFetcher
}

func NewGenerator(seller Seller, images ImageFetcher) *Generator {
	return &Generator{seller: seller, images: images}
}

func (g *Generator) Render(ctx context.Context, meta Meta, items []cart.LineItem) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(brandColor.r, brandColor.g, brandColor.b)
		pdf.CellFormat(0, 5, Fold(g.seller.Name), "", 1, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, "NIT: "+g.seller.TaxID, "", 1, "R", false, 0, "")
		pdf.CellFormat(0, 5, "WhatsApp: "+g.seller.Phone, "", 1, "R", false, 0, "")
		pdf.CellFormat(0, 5, g.seller.Website, "", 1, "R", false, 0, "")
		pdf.SetDrawColor(brandColor.r, brandColor.g, brandColor.b)
		pdf.SetLineWidth(0.5)
		pdf.Line(10, 42, 200, 42)
		pdf.SetY(46)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-25)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.SetDrawColor(100, 100, 100)
		pdf.SetLineWidth(0.2)
		pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
		pdf.CellFormat(0, 10, "Esta cotizacion tiene una validez de 15 dias calendario.", "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Pagina %d", pdf.PageNo()), "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	// Pagination is handled row by row below.
	pdf.SetAutoPageBreak(false, 25)
	pdf.AddPage()

	g.clientBlock(pdf, meta)
	g.tableHeader(pdf)

	totals := make([]decimal.Decimal, len(items))
	for i, item := range items {
		if pdf.GetY()+itemRowHeight > contentBottom {
			pdf.AddPage()
			g.tableHeader(pdf)
		}
		g.itemRow(ctx, pdf, item, i)
		totals[i] = item.Total
	}

	if pdf.GetY()+15 > contentBottom {
		pdf.AddPage()
	}
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colPhoto+colDetail+colQty+colUnit, 10, "TOTAL COTIZADO:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 10, pricing.Format(pricing.Sum(totals)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering quotation pdf")
	}
	return buf.Bytes(), nil
}

// --------------------------------------------------
// Quotation number + client block
// --------------------------------------------------
func (g *Generator) clientBlock(pdf *fpdf.Fpdf, meta Meta) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(200, 0, 0)
	pdf.CellFormat(0, 8, "COTIZACION N. "+Fold(meta.Number), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "CLIENTE: "+strings.ToUpper(Fold(meta.ClientName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "NIT/CC: "+meta.ClientTaxID, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "FECHA: "+meta.IssuedAt.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

// --------------------------------------------------
// Item table
// --------------------------------------------------
func (g *Generator) tableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colPhoto, headerRowHeight, "Foto", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colDetail, headerRowHeight, "Producto / Detalle", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colQty, headerRowHeight, "Cant", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colUnit, headerRowHeight, "V. Unit", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colTotal, headerRowHeight, "Total", "1", 1, "C", true, 0, "")
}

func (g *Generator) itemRow(ctx context.Context, pdf *fpdf.Fpdf, item cart.LineItem, index int) {
	x, y := pdf.GetXY()

	placeholder := ""
	data, err := g.images.Fetch(ctx, item.ImageURL)
	if err != nil {
		// Degrades this one cell; the document keeps going.
		logrus.WithError(err).WithField("product", item.Product).Debug("photo cell degraded")
		placeholder = "S.F"
	} else {
		name := fmt.Sprintf("item-photo-%d", index)
		opts := fpdf.ImageOptions{ImageType: "JPG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
		pdf.ImageOptions(name, x+2, y+2, 26, 21, false, opts, 0, "")
	}

	pdf.SetXY(x, y)
	pdf.CellFormat(colPhoto, itemRowHeight, placeholder, "1", 0, "CM", false, 0, "")

	pdf.SetXY(x+colPhoto, y)
	pdf.CellFormat(colDetail, itemRowHeight, "", "1", 0, "", false, 0, "")
	pdf.SetXY(x+colPhoto+1, y+2)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.MultiCell(colDetail-2, 4, Fold(truncate(item.Product, maxNameChars)), "", "L", false)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(x+colPhoto+1, y+10)
	pdf.MultiCell(colDetail-2, 3.5, Fold(truncate(item.Description, maxDescChars)), "", "L", false)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetXY(x+colPhoto+colDetail, y)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(colQty, itemRowHeight, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
	pdf.CellFormat(colUnit, itemRowHeight, pricing.Format(decimal.NewFromFloat(item.UnitPrice)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, itemRowHeight, pricing.Format(item.Total), "1", 1, "R", false, 0, "")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
