package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAplicarMontoParcial(t *testing.T) {
	orden := &OrdenCompra{Total: d("4384.80"), SaldoPendiente: d("4384.80"), EstadoPago: PagoOrdenPendiente}

	orden.AplicarMonto(d("1000.00"))

	assert.True(t, orden.MontoPagado.Equal(d("1000.00")))
	assert.True(t, orden.SaldoPendiente.Equal(d("3384.80")))
	assert.Equal(t, PagoOrdenParcial, orden.EstadoPago)
}

func TestAplicarMontoCompleto(t *testing.T) {
	orden := &OrdenCompra{Total: d("1500.00"), SaldoPendiente: d("1500.00")}

	orden.AplicarMonto(d("1500.00"))

	assert.True(t, orden.SaldoPendiente.IsZero())
	assert.Equal(t, PagoOrdenPagada, orden.EstadoPago)
}

func TestAplicarMontoSobrepago(t *testing.T) {
	orden := &OrdenCompra{Total: d("100.00"), SaldoPendiente: d("100.00")}

	orden.AplicarMonto(d("150.00"))

	// Overpayment is allowed (advance payments); the balance floors at zero.
	assert.True(t, orden.MontoPagado.Equal(d("150.00")))
	assert.True(t, orden.SaldoPendiente.IsZero())
	assert.Equal(t, PagoOrdenPagada, orden.EstadoPago)
}

func TestAplicarMontoReversa(t *testing.T) {
	orden := &OrdenCompra{Total: d("200.00")}
	orden.AplicarMonto(d("200.00"))
	assert.Equal(t, PagoOrdenPagada, orden.EstadoPago)

	orden.AplicarMonto(d("-200.00"))

	assert.True(t, orden.MontoPagado.IsZero())
	assert.True(t, orden.SaldoPendiente.Equal(d("200.00")))
	assert.Equal(t, PagoOrdenPendiente, orden.EstadoPago)
}

func TestPagable(t *testing.T) {
	assert.True(t, (&OrdenCompra{Estado: OrdenPendiente}).Pagable())
	assert.False(t, (&OrdenCompra{Estado: OrdenCancelada}).Pagable())
	assert.False(t, (&OrdenCompra{Estado: OrdenBorrador}).Pagable())
}
