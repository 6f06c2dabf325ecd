package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"github.com/obratec/obras-backoffice-be/internal/shared/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreatePagoRequest struct {
	OrdenCompraID      string          `json:"orden_compra_id"`
	Monto              decimal.Decimal `json:"monto"`
	TipoPago           string          `json:"tipo_pago"`
	ReferenciaBancaria string          `json:"referencia_bancaria"`
	Banco              string          `json:"banco"`
	FechaPago          string          `json:"fecha_pago"`
	Observaciones      string          `json:"observaciones"`
}

// PagoService captures manual payments and keeps the owning order's payment
// tracking consistent. Payment plus order update run in one transaction.
type PagoService struct {
	inTx     txRunner
	pagoRepo repositories.PagoRepo
	auditor  audit.Recorder
}

func NewPagoService(db *gorm.DB, pagoRepo repositories.PagoRepo, auditor audit.Recorder) *PagoService {
	return &PagoService{inTx: gormTxRunner(db), pagoRepo: pagoRepo, auditor: auditor}
}

func (s *PagoService) Create(actor string, req CreatePagoRequest) (*models.Pago, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var pago *models.Pago
	err := s.inTx(func(repos txRepos) error {
		orden, err := repos.ordenes.GetByID(req.OrdenCompraID)
		if err != nil {
			return fmt.Errorf("orden no encontrada: %w", err)
		}
		if !orden.Pagable() {
			verr := newValidationError()
			verr.add("orden_compra_id", "la orden no admite pagos en su estado actual")
			return verr
		}

		monto := req.Monto.Round(2)
		if monto.GreaterThan(orden.SaldoPendiente) {
			utils.LogWarn("pago excede el saldo pendiente", map[string]interface{}{
				"orden_id": orden.ID.String(),
				"monto":    monto.String(),
				"saldo":    orden.SaldoPendiente.String(),
			})
		}

		ahora := time.Now()
		pago = &models.Pago{
			NumeroPago:         generarNumeroPago(ahora),
			OrdenCompraID:      orden.ID,
			ProveedorID:        orden.ProveedorID,
			ObraID:             orden.ObraID,
			Monto:              monto,
			TipoPago:           tipoPagoODefault(req.TipoPago),
			ReferenciaBancaria: req.ReferenciaBancaria,
			Banco:              req.Banco,
			FechaPago:          req.FechaPago,
			FechaAplicacion:    &ahora,
			Estado:             models.PagoAplicado,
			Observaciones:      req.Observaciones,
		}
		if err := repos.pagos.Create(pago); err != nil {
			return fmt.Errorf("error creando pago: %w", err)
		}

		orden.AplicarMonto(monto)
		if err := repos.ordenes.Update(orden); err != nil {
			return fmt.Errorf("error actualizando saldo de orden: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditor.Record(actor, audit.AccionPago, "pago", pago.ID.String(),
		fmt.Sprintf("%s por %s", pago.NumeroPago, pago.Monto.String()))
	utils.LogInfo("pago registrado", map[string]interface{}{
		"pago_id":  pago.ID.String(),
		"orden_id": pago.OrdenCompraID.String(),
		"monto":    pago.Monto.String(),
	})
	return pago, nil
}

func (s *PagoService) GetByID(id string) (*models.Pago, error) {
	return s.pagoRepo.GetByID(id)
}

func (s *PagoService) List(obraID string, limit int) ([]models.Pago, error) {
	return s.pagoRepo.List(obraID, limit)
}

func (s *PagoService) ListByOrden(ordenID string) ([]models.Pago, error) {
	return s.pagoRepo.ListByOrden(ordenID)
}

// Cancelar reverses an applied payment: the payment is flagged cancelled and
// its amount is subtracted back from the order balance, atomically. Payments
// generated by bank reconciliation are rejected; reversing those goes through
// unmatch so the transaction is released together with the payment.
func (s *PagoService) Cancelar(actor, id, motivo string) (*models.Pago, error) {
	var pago *models.Pago
	err := s.inTx(func(repos txRepos) error {
		var err error
		pago, err = repos.pagos.GetByID(id)
		if err != nil {
			return err
		}
		if pago.Estado == models.PagoCancelado {
			verr := newValidationError()
			verr.add("estado", "el pago ya está cancelado")
			return verr
		}
		if pago.BankTransactionID != nil {
			verr := newValidationError()
			verr.add("bank_transaction_id", "el pago proviene de conciliación bancaria; revierta la conciliación de la transacción")
			return verr
		}

		orden, err := repos.ordenes.GetByID(pago.OrdenCompraID.String())
		if err != nil {
			return fmt.Errorf("orden del pago no encontrada: %w", err)
		}

		pago.Estado = models.PagoCancelado
		if motivo != "" {
			pago.Observaciones = strings.TrimSpace(pago.Observaciones + "\nCancelado: " + motivo)
		}
		if err := repos.pagos.Update(pago); err != nil {
			return fmt.Errorf("error cancelando pago: %w", err)
		}

		orden.AplicarMonto(pago.Monto.Neg())
		if err := repos.ordenes.Update(orden); err != nil {
			return fmt.Errorf("error revirtiendo saldo de orden: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditor.Record(actor, audit.AccionActualizar, "pago", id, "cancelado: "+motivo)
	return pago, nil
}

func (s *PagoService) validate(req CreatePagoRequest) error {
	verr := newValidationError()
	if req.Monto.LessThanOrEqual(decimal.Zero) {
		verr.add("monto", "el monto debe ser mayor a cero")
	}
	if strings.TrimSpace(req.FechaPago) == "" {
		verr.add("fecha_pago", "la fecha de pago es obligatoria")
	}
	if strings.TrimSpace(req.OrdenCompraID) == "" {
		verr.add("orden_compra_id", "la orden de compra es obligatoria")
	}
	return verr.orNil()
}

func generarNumeroPago(t time.Time) string {
	return fmt.Sprintf("PG-%s-%06d", t.Format("20060102"), t.UnixNano()%1000000)
}

func tipoPagoODefault(tipo string) string {
	switch tipo {
	case models.TipoCheque, models.TipoEfectivo, models.TipoTarjeta:
		return tipo
	}
	return models.TipoTransferencia
}
