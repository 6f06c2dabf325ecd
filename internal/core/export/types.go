package export

import "time"

// TableData is the format-independent payload for a tabular export.
type TableData struct {
	Title     string
	Headers   []string
	Rows      [][]interface{}
	CreatedAt time.Time
}

// Format constants
const (
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"
)
