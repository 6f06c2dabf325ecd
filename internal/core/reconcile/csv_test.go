package reconcile

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVWithHeader(t *testing.T) {
	input := strings.Join([]string{
		"Fecha,Descripcion,Monto,Referencia",
		"2026-08-01,PAGO OC-228-A01JP-PROV1 TRANSFERENCIA,4384.80,REF001",
		"2026-08-02,SPEI RECIBIDO 310-B00LM-CEM,1500.00,REF002",
	}, "\n")

	rows, rowErrs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-08-01", rows[0].Fecha)
	assert.Equal(t, "PAGO OC-228-A01JP-PROV1 TRANSFERENCIA", rows[0].DescripcionBanco)
	assert.True(t, rows[0].Monto.Equal(decimal.RequireFromString("4384.80")))
	assert.Equal(t, "REF001", rows[0].ReferenciaBancaria)
}

func TestParseCSVWithoutHeader(t *testing.T) {
	input := "2026-08-01,PAGO PROVEEDOR,100.50,\n"

	rows, rowErrs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].ReferenciaBancaria)
}

func TestParseCSVDropsInvalidRowsWithoutAbortingBatch(t *testing.T) {
	input := strings.Join([]string{
		"fecha,descripcion,monto,referencia",
		"2026-08-01,PAGO UNO,100.00,A",
		"2026-08-02,,200.00,B",
		"2026-08-03,PAGO TRES,300.00,C",
	}, "\n")

	rows, rowErrs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, rowErrs, 1)
	assert.Equal(t, 3, rowErrs[0].Line)
	assert.Contains(t, rowErrs[0].Reason, "descripción")
}

func TestParseCSVAcceptsCurrencyFormattedAmount(t *testing.T) {
	input := "2026-08-01,PAGO PROVEEDOR,\"$4,384.80\",REF"

	rows, rowErrs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Monto.Equal(decimal.RequireFromString("4384.80")))
}

func TestParseCSVRejectsBadAmount(t *testing.T) {
	input := "2026-08-01,PAGO,no-es-numero,REF\n2026-08-02,PAGO DOS,50.00,REF"

	rows, rowErrs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	require.Len(t, rowErrs, 1)
	assert.Contains(t, rowErrs[0].Reason, "monto")
}

func TestParseCSVEmptyBatch(t *testing.T) {
	input := "Fecha,Descripcion,Monto,Referencia\n,,abc,\n"

	_, rowErrs, err := ParseCSV(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrEmptyBatch)
	assert.NotEmpty(t, rowErrs)
}

func TestParseCSVEmptyInput(t *testing.T) {
	_, _, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyBatch)
}
