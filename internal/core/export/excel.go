package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter implements Excel export using excelize
type ExcelExporter struct {
	sheetName string
}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{
		sheetName: "Reporte",
	}
}

// Export writes the table as an .xlsx workbook.
func (e *ExcelExporter) Export(data *TableData, writer io.Writer) error {
	if len(data.Headers) == 0 {
		return fmt.Errorf("no headers provided")
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", e.sheetName)

	rowIndex := 1
	if data.Title != "" {
		f.SetCellValue(e.sheetName, fmt.Sprintf("A%d", rowIndex), data.Title)
		titleStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 14},
		})
		f.SetCellStyle(e.sheetName, fmt.Sprintf("A%d", rowIndex), fmt.Sprintf("A%d", rowIndex), titleStyle)
		rowIndex += 2
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for colIndex, header := range data.Headers {
		cell := columnNumberToName(colIndex+1) + strconv.Itoa(rowIndex)
		f.SetCellValue(e.sheetName, cell, header)
		f.SetCellStyle(e.sheetName, cell, cell, headerStyle)
	}
	rowIndex++

	for _, row := range data.Rows {
		for colIndex, value := range row {
			cell := columnNumberToName(colIndex+1) + strconv.Itoa(rowIndex)
			f.SetCellValue(e.sheetName, cell, value)
		}
		rowIndex++
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write excel file: %w", err)
	}
	return nil
}

// columnNumberToName converts a 1-based column number to its Excel name.
func columnNumberToName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}
