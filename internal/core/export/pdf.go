package export

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

// OrdenDocumentoItem is one printed line of a purchase order document.
type OrdenDocumentoItem struct {
	Descripcion    string
	Unidad         string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal
}

// OrdenDocumento carries everything the purchase order PDF renders. Callers
// map their persistence model into this shape so the exporter stays
// storage-agnostic.
type OrdenDocumento struct {
	Folio      string
	FechaOrden time.Time

	ObraCodigo    string
	ObraNombre    string
	Proveedor     string
	ProveedorRFC  string
	Comprador     string
	FormaPago     string
	DiasCredito   int
	TipoEntrega   string
	Observaciones string

	Items []OrdenDocumentoItem

	Subtotal       decimal.Decimal
	DescuentoMonto decimal.Decimal
	TieneIVA       bool
	IVA            decimal.Decimal
	Total          decimal.Decimal
}

// PDFExporter renders purchase order documents and tabular reports with
// gofpdf.
type PDFExporter struct {
	orientation string
	pageSize    string
}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{
		orientation: "P",
		pageSize:    "A4",
	}
}

// ExportOrden renders a printable purchase order, QR folio included.
func (p *PDFExporter) ExportOrden(doc *OrdenDocumento, writer io.Writer) error {
	if doc.Folio == "" {
		return fmt.Errorf("orden sin folio")
	}

	pdf := gofpdf.New(p.orientation, "mm", p.pageSize, "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Orden de Compra")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 7, doc.Folio)
	pdf.Ln(9)

	if err := p.drawFolioQR(pdf, doc.Folio); err != nil {
		return err
	}

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Fecha: %s", doc.FechaOrden.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Obra: %s - %s", doc.ObraCodigo, doc.ObraNombre))
	pdf.Ln(6)
	proveedor := doc.Proveedor
	if doc.ProveedorRFC != "" {
		proveedor = fmt.Sprintf("%s (RFC %s)", proveedor, doc.ProveedorRFC)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Proveedor: %s", proveedor))
	pdf.Ln(6)
	if doc.Comprador != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Comprador: %s", doc.Comprador))
		pdf.Ln(6)
	}
	condiciones := doc.FormaPago
	if doc.DiasCredito > 0 {
		condiciones = fmt.Sprintf("%s (%d días)", condiciones, doc.DiasCredito)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Condiciones: %s | Entrega: %s", condiciones, doc.TipoEntrega))
	pdf.Ln(10)

	// Items table
	widths := []float64{90, 20, 20, 30, 30}
	headers := []string{"Descripción", "Unidad", "Cantidad", "P. Unitario", "Total"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(31, 78, 121)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 9)
	for _, item := range doc.Items {
		pdf.CellFormat(widths[0], 6, item.Descripcion, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, item.Unidad, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, item.Cantidad.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, formatMoney(item.PrecioUnitario), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, formatMoney(item.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// Totals block, right aligned
	labelWidth := widths[0] + widths[1] + widths[2]
	totals := []struct {
		label string
		value decimal.Decimal
	}{
		{"Subtotal", doc.Subtotal},
		{"Descuento", doc.DescuentoMonto},
	}
	if doc.TieneIVA {
		totals = append(totals, struct {
			label string
			value decimal.Decimal
		}{"IVA (16%)", doc.IVA})
	}

	pdf.SetFont("Arial", "", 10)
	for _, t := range totals {
		pdf.CellFormat(labelWidth, 6, "", "", 0, "", false, 0, "")
		pdf.CellFormat(widths[3], 6, t.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, formatMoney(t.value), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(labelWidth, 7, "", "", 0, "", false, 0, "")
	pdf.CellFormat(widths[3], 7, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, formatMoney(doc.Total), "1", 0, "R", false, 0, "")
	pdf.Ln(10)

	if doc.Observaciones != "" {
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, "Observaciones: "+doc.Observaciones, "", "L", false)
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

// ExportTable renders a generic tabular report.
func (p *PDFExporter) ExportTable(data *TableData, writer io.Writer) error {
	if len(data.Headers) == 0 {
		return fmt.Errorf("no headers provided")
	}

	pdf := gofpdf.New("L", "mm", p.pageSize, "")
	pdf.AddPage()

	if data.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, data.Title)
		pdf.Ln(12)
	}

	pageWidth, _ := pdf.GetPageSize()
	leftMargin, _, rightMargin, _ := pdf.GetMargins()
	colWidth := (pageWidth - leftMargin - rightMargin) / float64(len(data.Headers))

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(31, 78, 121)
	pdf.SetTextColor(255, 255, 255)
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 8)
	for _, row := range data.Rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, fmt.Sprintf("%v", value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

// drawFolioQR stamps a QR with the folio in the top right corner so a scan
// on the receiving dock resolves the order.
func (p *PDFExporter) drawFolioQR(pdf *gofpdf.Fpdf, folio string) error {
	png, err := qrcode.Encode(folio, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to encode folio qr: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("folio-qr", opts, bytes.NewReader(png))

	pageWidth, _ := pdf.GetPageSize()
	_, _, rightMargin, _ := pdf.GetMargins()
	pdf.ImageOptions("folio-qr", pageWidth-rightMargin-24, 10, 24, 24, false, opts, 0, "")
	return nil
}

func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
