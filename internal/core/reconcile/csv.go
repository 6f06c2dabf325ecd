package reconcile

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// ImportRow is one parsed bank statement line, ready to be persisted as an
// unmatched transaction. Column order in the source file is fixed:
// fecha, descripción, monto, referencia bancaria.
type ImportRow struct {
	Fecha              string
	DescripcionBanco   string
	Monto              decimal.Decimal
	ReferenciaBancaria string
}

// ParseCSV reads a bank statement export. A header row is detected when the
// first column contains "fecha" (any case) and is skipped. Rows with an
// empty date or description, or an unparseable amount, are collected as
// RowErrors without aborting the batch. Zero valid rows is ErrEmptyBatch.
func ParseCSV(r io.Reader) ([]ImportRow, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []ImportRow
	var rowErrs []RowError

	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line++
			rowErrs = append(rowErrs, RowError{Line: line, Reason: err.Error()})
			continue
		}
		line++

		if line == 1 && len(record) > 0 && strings.Contains(strings.ToLower(record[0]), "fecha") {
			continue
		}

		row, reason := parseRecord(record)
		if reason != "" {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: reason})
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, rowErrs, ErrEmptyBatch
	}
	return rows, rowErrs, nil
}

func parseRecord(record []string) (ImportRow, string) {
	get := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	fecha := get(0)
	descripcion := get(1)
	if fecha == "" {
		return ImportRow{}, "fecha vacía"
	}
	if descripcion == "" {
		return ImportRow{}, "descripción vacía"
	}

	monto, err := decimal.NewFromString(normalizeAmount(get(2)))
	if err != nil {
		return ImportRow{}, "monto inválido"
	}

	return ImportRow{
		Fecha:              fecha,
		DescripcionBanco:   descripcion,
		Monto:              monto.Round(2),
		ReferenciaBancaria: get(3),
	}, ""
}

// normalizeAmount strips the currency formatting bank exports carry
// ("$1,234.50" → "1234.50").
func normalizeAmount(s string) string {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
