package totals

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		cantidad string
		precio   string
		want     string
		wantErr  error
	}{
		{"whole numbers", "10", "200.00", "2000.00", nil},
		{"rounds half up", "3", "33.335", "100.01", nil},
		{"zero quantity", "0", "99.99", "0.00", nil},
		{"negative quantity", "-1", "10", "", ErrInvalidQuantity},
		{"negative price", "1", "-10", "", ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LineTotal(d(tt.cantidad), d(tt.precio))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestLineTotalDeterministic(t *testing.T) {
	a, err := LineTotal(d("7.5"), d("133.33"))
	require.NoError(t, err)
	b, err := LineTotal(d("7.5"), d("133.33"))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func itemsFixture(t *testing.T) []LineItem {
	t.Helper()
	items, err := NormalizeItems([]LineItem{
		{Descripcion: "Cemento gris", Unidad: "ton", Cantidad: d("10"), PrecioUnitario: d("200.00")},
		{Descripcion: "Varilla 3/8", Unidad: "pza", Cantidad: d("2"), PrecioUnitario: d("1100.00")},
	})
	require.NoError(t, err)
	return items
}

func TestCalculatePercentDiscountWithIVA(t *testing.T) {
	got, err := Calculate(itemsFixture(t), DiscountPercent, d("10"), true)
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(d("4200.00")), "subtotal %s", got.Subtotal)
	assert.True(t, got.DescuentoMonto.Equal(d("420.00")), "descuento %s", got.DescuentoMonto)
	assert.True(t, got.IVA.Equal(d("604.80")), "iva %s", got.IVA)
	assert.True(t, got.Total.Equal(d("4384.80")), "total %s", got.Total)
}

func TestCalculateNoIVA(t *testing.T) {
	got, err := Calculate(itemsFixture(t), DiscountPercent, d("10"), false)
	require.NoError(t, err)

	assert.True(t, got.IVA.IsZero())
	assert.True(t, got.Total.Equal(got.Subtotal.Sub(got.DescuentoMonto)))
}

func TestCalculateZeroDiscount(t *testing.T) {
	for _, mode := range []DiscountMode{DiscountPercent, DiscountAmount} {
		got, err := Calculate(itemsFixture(t), mode, decimal.Zero, true)
		require.NoError(t, err)
		assert.True(t, got.DescuentoMonto.IsZero(), "mode %s", mode)
	}
}

func TestCalculateAmountDiscountCappedAtSubtotal(t *testing.T) {
	got, err := Calculate(itemsFixture(t), DiscountAmount, d("999999"), true)
	require.NoError(t, err)

	assert.True(t, got.DescuentoMonto.Equal(d("4200.00")))
	assert.True(t, got.Total.IsZero(), "total %s", got.Total)
}

func TestCalculateSubtotalIsSumOfLineTotals(t *testing.T) {
	items := itemsFixture(t)
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total)
	}

	got, err := Calculate(items, DiscountAmount, decimal.Zero, false)
	require.NoError(t, err)
	assert.True(t, got.Subtotal.Equal(sum))
}

func TestCalculateRepeatableByteIdentical(t *testing.T) {
	items := itemsFixture(t)
	first, err := Calculate(items, DiscountPercent, d("12.5"), true)
	require.NoError(t, err)
	second, err := Calculate(items, DiscountPercent, d("12.5"), true)
	require.NoError(t, err)

	assert.Equal(t, first.Subtotal.String(), second.Subtotal.String())
	assert.Equal(t, first.DescuentoMonto.String(), second.DescuentoMonto.String())
	assert.Equal(t, first.IVA.String(), second.IVA.String())
	assert.Equal(t, first.Total.String(), second.Total.String())
}

func TestCalculateRejectsBadInput(t *testing.T) {
	items := itemsFixture(t)

	_, err := Calculate(items, DiscountPercent, d("-1"), true)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = Calculate(items, DiscountPercent, d("101"), true)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = Calculate(items, DiscountMode("otro"), d("5"), true)
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestCalculateEmptyItems(t *testing.T) {
	got, err := Calculate(nil, DiscountPercent, d("10"), true)
	require.NoError(t, err)
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.Total.IsZero())
}
