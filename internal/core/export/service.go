package export

import (
	"bytes"
	"fmt"
)

// Service provides high-level export functionality
type Service struct {
	pdfExporter   *PDFExporter
	excelExporter *ExcelExporter
	maxRows       int
}

// NewService creates a new export service. maxRows caps tabular exports so
// a runaway query cannot build an unbounded workbook in memory.
func NewService(maxRows int) *Service {
	if maxRows <= 0 {
		maxRows = 5000
	}
	return &Service{
		pdfExporter:   NewPDFExporter(),
		excelExporter: NewExcelExporter(),
		maxRows:       maxRows,
	}
}

// OrdenPDF renders a single purchase order document.
func (s *Service) OrdenPDF(doc *OrdenDocumento) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdfExporter.ExportOrden(doc, &buf); err != nil {
		return nil, fmt.Errorf("PDF export failed: %w", err)
	}
	return buf.Bytes(), nil
}

// Table renders a tabular report in the requested format and returns the
// bytes plus content type.
func (s *Service) Table(data *TableData, format string) ([]byte, string, error) {
	if len(data.Rows) > s.maxRows {
		data.Rows = data.Rows[:s.maxRows]
	}

	var buf bytes.Buffer
	switch format {
	case FormatPDF:
		if err := s.pdfExporter.ExportTable(data, &buf); err != nil {
			return nil, "", fmt.Errorf("PDF export failed: %w", err)
		}
		return buf.Bytes(), "application/pdf", nil
	case FormatExcel, "":
		if err := s.excelExporter.Export(data, &buf); err != nil {
			return nil, "", fmt.Errorf("Excel export failed: %w", err)
		}
		return buf.Bytes(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	}
	return nil, "", fmt.Errorf("unsupported export format: %s", format)
}
