package folio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdenCompra(t *testing.T) {
	tests := []struct {
		name        string
		obra        string
		iniciales   string
		proveedor   string
		consecutivo int
		want        string
	}{
		{"first order", "228", "JP", "PROV1", 1, "228-A01JP-PROV1"},
		{"two digit sequence", "228", "JR", "INT", 45, "228-A45JR-INT"},
		{"rolls into B block", "310", "LM", "CEM", 100, "310-B00LM-CEM"},
		{"lowercase initials normalized", "228", "jp", "prov1", 1, "228-A01JP-PROV1"},
		{"zero sequence treated as first", "228", "JP", "PROV1", 0, "228-A01JP-PROV1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrdenCompra(tt.obra, tt.iniciales, tt.proveedor, tt.consecutivo)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrdenCompraDeterministic(t *testing.T) {
	a := OrdenCompra("228", "JP", "PROV1", 7)
	b := OrdenCompra("228", "JP", "PROV1", 7)
	assert.Equal(t, a, b)
}

func TestRequisicion(t *testing.T) {
	assert.Equal(t, "REQ228-1LM", Requisicion("228", "LM", 1))
	assert.Equal(t, "REQ228-12LM", Requisicion("228", "lm", 12))
}

func TestCodigoProveedor(t *testing.T) {
	assert.Equal(t, "PIP", CodigoProveedor("Pipa Luis Gomez"))
	assert.Equal(t, "INT", CodigoProveedor("interceramic"))
	assert.Equal(t, "AC", CodigoProveedor("  a c  "))
	assert.Equal(t, "", CodigoProveedor(""))
}
