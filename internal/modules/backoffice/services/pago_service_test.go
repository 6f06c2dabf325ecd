package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPagoServiceForTest() (*PagoService, *fakeOrdenRepo, *fakePagoRepo) {
	ordenRepo := newFakeOrdenRepo()
	pagoRepo := newFakePagoRepo()

	svc := NewPagoService(nil, pagoRepo, noopAuditor{})
	svc.inTx = fakeTxRunner(txRepos{
		transacciones: newFakeBankTransactionRepo(),
		ordenes:       ordenRepo,
		pagos:         pagoRepo,
	})
	return svc, ordenRepo, pagoRepo
}

func TestCreatePagoActualizaSaldoDeOrden(t *testing.T) {
	svc, ordenRepo, pagoRepo := newPagoServiceForTest()
	orden := seedOrdenPagable(t, ordenRepo, "1000")

	pago, err := svc.Create("tester", CreatePagoRequest{
		OrdenCompraID: orden.ID.String(),
		Monto:         dec("400"),
		FechaPago:     "2026-08-01",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PagoAplicado, pago.Estado)
	assert.Equal(t, models.TipoTransferencia, pago.TipoPago)
	assert.True(t, orden.MontoPagado.Equal(dec("400")))
	assert.True(t, orden.SaldoPendiente.Equal(dec("600")))
	assert.Equal(t, models.PagoOrdenParcial, orden.EstadoPago)
	assert.Len(t, pagoRepo.pagos, 1)
}

func TestCreatePagoValidaCampos(t *testing.T) {
	svc, _, _ := newPagoServiceForTest()

	_, err := svc.Create("tester", CreatePagoRequest{Monto: dec("0")})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "monto")
	assert.Contains(t, verr.Fields, "fecha_pago")
	assert.Contains(t, verr.Fields, "orden_compra_id")
}

func TestCancelarPagoRevierteSaldo(t *testing.T) {
	svc, ordenRepo, _ := newPagoServiceForTest()
	orden := seedOrdenPagable(t, ordenRepo, "1000")

	pago, err := svc.Create("tester", CreatePagoRequest{
		OrdenCompraID: orden.ID.String(),
		Monto:         dec("400"),
		FechaPago:     "2026-08-01",
	})
	require.NoError(t, err)

	cancelado, err := svc.Cancelar("tester", pago.ID.String(), "monto duplicado")
	require.NoError(t, err)

	assert.Equal(t, models.PagoCancelado, cancelado.Estado)
	assert.Contains(t, cancelado.Observaciones, "monto duplicado")
	assert.True(t, orden.MontoPagado.IsZero())
	assert.True(t, orden.SaldoPendiente.Equal(dec("1000")))

	// Cancelling twice is rejected.
	_, err = svc.Cancelar("tester", pago.ID.String(), "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "estado")
}

func TestCancelarPagoDeConciliacionRechazado(t *testing.T) {
	svc, ordenRepo, pagoRepo := newPagoServiceForTest()
	orden := seedOrdenPagable(t, ordenRepo, "1000")
	orden.AplicarMonto(dec("400"))
	require.NoError(t, ordenRepo.Update(orden))

	transactionID := uuid.New()
	pago := &models.Pago{
		NumeroPago:        "PG-20260801-000001",
		OrdenCompraID:     orden.ID,
		ProveedorID:       orden.ProveedorID,
		ObraID:            orden.ObraID,
		BankTransactionID: &transactionID,
		Monto:             dec("400"),
		FechaPago:         "2026-08-01",
		Estado:            models.PagoAplicado,
	}
	require.NoError(t, pagoRepo.Create(pago))

	_, err := svc.Cancelar("tester", pago.ID.String(), "capturado por error")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "bank_transaction_id")

	// Nothing moved: the payment stays applied and the balance untouched.
	assert.Equal(t, models.PagoAplicado, pago.Estado)
	assert.True(t, orden.MontoPagado.Equal(dec("400")))
}
