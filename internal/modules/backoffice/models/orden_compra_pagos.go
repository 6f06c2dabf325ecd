package models

import "github.com/shopspring/decimal"

// AplicarMonto applies a paid amount (negative for reversals) to the
// order's payment tracking and rederives EstadoPago. MontoPagado and
// SaldoPendiente always move together; callers never touch them directly.
func (o *OrdenCompra) AplicarMonto(monto decimal.Decimal) {
	o.MontoPagado = o.MontoPagado.Add(monto).Round(2)
	if o.MontoPagado.IsNegative() {
		o.MontoPagado = decimal.Zero
	}

	o.SaldoPendiente = o.Total.Sub(o.MontoPagado).Round(2)
	if o.SaldoPendiente.IsNegative() {
		o.SaldoPendiente = decimal.Zero
	}

	switch {
	case o.MontoPagado.IsZero():
		o.EstadoPago = PagoOrdenPendiente
	case o.SaldoPendiente.IsZero():
		o.EstadoPago = PagoOrdenPagada
	default:
		o.EstadoPago = PagoOrdenParcial
	}
}

// Pagable reports whether the order can still receive payments.
func (o *OrdenCompra) Pagable() bool {
	return o.Estado != OrdenCancelada && o.Estado != OrdenBorrador
}
