package totals

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DiscountMode selects how the order-level discount value is interpreted.
// The two modes exist side by side in the business: site buyers capture a
// percentage, the payments desk captures a flat amount.
type DiscountMode string

const (
	DiscountPercent DiscountMode = "porcentaje"
	DiscountAmount  DiscountMode = "monto"
)

var (
	ErrInvalidQuantity = errors.New("cantidad must not be negative")
	ErrInvalidPrice    = errors.New("precio unitario must not be negative")
	ErrInvalidDiscount = errors.New("descuento must be >= 0 (and <= 100 in percent mode)")
	ErrInvalidMode     = errors.New("unknown discount mode")
)

// ivaRate is the fixed Mexican VAT rate. Not configurable.
var ivaRate = decimal.New(16, -2) // 0.16

// LineItem is one material line of a purchase order. Total is always derived
// from Cantidad and PrecioUnitario, never edited directly.
type LineItem struct {
	Descripcion    string
	Unidad         string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal
}

// OrderTotals is the consistent snapshot of an order's monetary summary.
// All four fields are produced together by Calculate; callers must never
// patch a single field in isolation.
type OrderTotals struct {
	Subtotal       decimal.Decimal
	DescuentoMonto decimal.Decimal
	IVA            decimal.Decimal
	Total          decimal.Decimal
}

// LineTotal computes round(cantidad * precioUnitario, 2).
func LineTotal(cantidad, precioUnitario decimal.Decimal) (decimal.Decimal, error) {
	if cantidad.IsNegative() {
		return decimal.Zero, ErrInvalidQuantity
	}
	if precioUnitario.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return cantidad.Mul(precioUnitario).Round(2), nil
}

// NormalizeItems recomputes every line total from its quantity and unit
// price, returning a fresh slice. Input slices are not mutated.
func NormalizeItems(items []LineItem) ([]LineItem, error) {
	out := make([]LineItem, len(items))
	for i, item := range items {
		total, err := LineTotal(item.Cantidad, item.PrecioUnitario)
		if err != nil {
			return nil, err
		}
		item.Total = total
		out[i] = item
	}
	return out, nil
}

// Calculate is the single source of truth for order totals. Every monetary
// field is rounded to 2 decimals (half up) before returning.
//
// In amount mode the discount is capped at the subtotal so the grand total
// can never go negative.
func Calculate(items []LineItem, mode DiscountMode, discountValue decimal.Decimal, hasIVA bool) (OrderTotals, error) {
	if discountValue.IsNegative() {
		return OrderTotals{}, ErrInvalidDiscount
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	subtotal = subtotal.Round(2)

	var descuento decimal.Decimal
	switch mode {
	case DiscountPercent:
		if discountValue.GreaterThan(decimal.NewFromInt(100)) {
			return OrderTotals{}, ErrInvalidDiscount
		}
		descuento = subtotal.Mul(discountValue).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountAmount:
		descuento = decimal.Min(discountValue, subtotal).Round(2)
	default:
		return OrderTotals{}, ErrInvalidMode
	}

	iva := decimal.Zero
	if hasIVA {
		iva = subtotal.Sub(descuento).Mul(ivaRate).Round(2)
	}

	total := subtotal.Sub(descuento).Add(iva).Round(2)

	return OrderTotals{
		Subtotal:       subtotal,
		DescuentoMonto: descuento,
		IVA:            iva,
		Total:          total,
	}, nil
}
