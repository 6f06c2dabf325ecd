package services

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/core/reconcile"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"github.com/obratec/obras-backoffice-be/internal/shared/utils"
	"gorm.io/gorm"
)

// ImportResult summarizes a CSV import: how many statement lines were
// persisted and which ones were rejected, line by line.
type ImportResult struct {
	Importadas    int                      `json:"importadas"`
	Rechazadas    []reconcile.RowError     `json:"rechazadas"`
	Transacciones []models.BankTransaction `json:"transacciones"`
}

// AutoMatchResult summarizes one auto-match run.
type AutoMatchResult struct {
	Revisadas   int      `json:"revisadas"`
	Conciliadas int      `json:"conciliadas"`
	Errores     []string `json:"errores,omitempty"`
}

// ConciliacionService drives bank reconciliation: statement import, folio
// auto-matching and manual match/unmatch. Every match applies the
// transaction flag, the generated payment and the order balance in a single
// database transaction.
type ConciliacionService struct {
	inTx            txRunner
	transactionRepo repositories.BankTransactionRepo
	ordenRepo       repositories.OrdenRepo
	pagoRepo        repositories.PagoRepo
	auditor         audit.Recorder
}

func NewConciliacionService(
	db *gorm.DB,
	transactionRepo repositories.BankTransactionRepo,
	ordenRepo repositories.OrdenRepo,
	pagoRepo repositories.PagoRepo,
	auditor audit.Recorder,
) *ConciliacionService {
	return &ConciliacionService{
		inTx:            gormTxRunner(db),
		transactionRepo: transactionRepo,
		ordenRepo:       ordenRepo,
		pagoRepo:        pagoRepo,
		auditor:         auditor,
	}
}

// ImportCSV parses a bank statement export and persists every valid line as
// an unmatched transaction. Bad rows are reported back without aborting the
// batch; a batch with zero valid rows is rejected whole.
func (s *ConciliacionService) ImportCSV(actor string, r io.Reader) (*ImportResult, error) {
	rows, rowErrs, err := reconcile.ParseCSV(r)
	if err != nil {
		return nil, err
	}

	transactions := make([]*models.BankTransaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, &models.BankTransaction{
			Fecha:              row.Fecha,
			DescripcionBanco:   row.DescripcionBanco,
			Monto:              row.Monto,
			ReferenciaBancaria: row.ReferenciaBancaria,
			Origen:             models.OrigenCSV,
		})
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return nil, fmt.Errorf("error guardando transacciones bancarias: %w", err)
	}

	result := &ImportResult{
		Importadas: len(transactions),
		Rechazadas: rowErrs,
	}
	for _, tx := range transactions {
		result.Transacciones = append(result.Transacciones, *tx)
	}

	s.auditor.Record(actor, audit.AccionImport, "bank_transaction", "",
		fmt.Sprintf("%d importadas, %d rechazadas", len(transactions), len(rowErrs)))
	utils.LogInfo("estado de cuenta importado", map[string]interface{}{
		"importadas": len(transactions),
		"rechazadas": len(rowErrs),
	})
	return result, nil
}

// AutoMatch scans unmatched transactions for order folios in their bank
// descriptions and applies each hit. One failed pair does not stop the run.
func (s *ConciliacionService) AutoMatch(actor string) (*AutoMatchResult, error) {
	unmatched := false
	transactions, err := s.transactionRepo.List(&unmatched, 0)
	if err != nil {
		return nil, fmt.Errorf("error listando transacciones: %w", err)
	}

	ordenes, err := s.ordenRepo.List(repositories.OrdenFilter{})
	if err != nil {
		return nil, fmt.Errorf("error listando órdenes: %w", err)
	}

	mTxs := make([]reconcile.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		mTxs = append(mTxs, reconcile.Transaction{
			ID:               tx.ID,
			DescripcionBanco: tx.DescripcionBanco,
			Matched:          tx.Matched,
		})
	}
	mOrders := make([]reconcile.Order, 0, len(ordenes))
	for _, o := range ordenes {
		if !o.Pagable() {
			continue
		}
		mOrders = append(mOrders, reconcile.Order{ID: o.ID, Folio: o.NumeroOrden})
	}

	matches := reconcile.FindAutoMatches(mTxs, mOrders)

	result := &AutoMatchResult{Revisadas: len(transactions)}
	for _, m := range matches {
		if _, err := s.applyMatch(actor, m.TransactionID, m.OrderID, reconcile.ConfidenceAuto, false); err != nil {
			result.Errores = append(result.Errores,
				fmt.Sprintf("transacción %s: %v", m.TransactionID, err))
			continue
		}
		result.Conciliadas++
	}

	utils.LogInfo("auto-match de conciliación ejecutado", map[string]interface{}{
		"revisadas":   result.Revisadas,
		"conciliadas": result.Conciliadas,
		"errores":     len(result.Errores),
	})
	return result, nil
}

// ManualMatch pairs a transaction with an order chosen by a person. Recorded
// with zero confidence so reports can tell both kinds apart.
func (s *ConciliacionService) ManualMatch(actor, transactionID, ordenID string) (*models.Pago, error) {
	txID, err := parseUUID(transactionID)
	if err != nil {
		verr := newValidationError()
		verr.add("transaction_id", "identificador de transacción inválido")
		return nil, verr
	}
	oID, err := parseUUID(ordenID)
	if err != nil {
		verr := newValidationError()
		verr.add("orden_compra_id", "identificador de orden inválido")
		return nil, verr
	}
	return s.applyMatch(actor, txID, oID, reconcile.ConfidenceManual, true)
}

// Unmatch reverses a match: the generated payment is cancelled, the order
// balance restored and the transaction returned to the unmatched pool.
func (s *ConciliacionService) Unmatch(actor, transactionID string) (*models.BankTransaction, error) {
	txID, err := parseUUID(transactionID)
	if err != nil {
		verr := newValidationError()
		verr.add("transaction_id", "identificador de transacción inválido")
		return nil, verr
	}

	var transaction *models.BankTransaction
	err = s.inTx(func(repos txRepos) error {
		var err error
		transaction, err = repos.transacciones.GetByID(txID.String())
		if err != nil {
			return err
		}
		if !transaction.Matched {
			return reconcile.ErrNotMatched
		}

		pago, err := repos.pagos.GetByBankTransaction(txID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &reconcile.InconsistencyError{
				TransactionID: txID.String(),
				Detail:        "transacción conciliada sin pago asociado",
			}
		}
		if err != nil {
			return fmt.Errorf("error buscando pago de la transacción: %w", err)
		}

		// A payment that is already cancelled had its amount reversed when it
		// was cancelled; reversing again would double-count the reversal.
		if pago.Estado != models.PagoCancelado {
			orden, err := repos.ordenes.GetByID(pago.OrdenCompraID.String())
			if err != nil {
				return fmt.Errorf("orden del pago no encontrada: %w", err)
			}

			pago.Estado = models.PagoCancelado
			if err := repos.pagos.Update(pago); err != nil {
				return fmt.Errorf("error cancelando pago de conciliación: %w", err)
			}

			orden.AplicarMonto(pago.Monto.Neg())
			if err := repos.ordenes.Update(orden); err != nil {
				return fmt.Errorf("error revirtiendo saldo de orden: %w", err)
			}
		}

		rows, err := repos.transacciones.Unmatch(txID)
		if err != nil {
			return fmt.Errorf("error desconciliando transacción: %w", err)
		}
		if rows == 0 {
			return reconcile.ErrNotMatched
		}

		transaction.Matched = false
		transaction.OrdenCompraID = nil
		transaction.MatchConfidence = 0
		transaction.MatchManual = false
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditor.Record(actor, audit.AccionUnmatch, "bank_transaction", txID.String(), "conciliación revertida")
	utils.LogInfo("conciliación revertida", map[string]interface{}{
		"transaction_id": txID.String(),
	})
	return transaction, nil
}

func (s *ConciliacionService) List(matched *bool, limit int) ([]models.BankTransaction, error) {
	return s.transactionRepo.List(matched, limit)
}

func (s *ConciliacionService) GetByID(id string) (*models.BankTransaction, error) {
	return s.transactionRepo.GetByID(id)
}

// applyMatch takes the unmatched → matched transition and creates the
// resulting payment in one transaction. The guarded update on the matched
// flag makes concurrent applies of the same transaction lose cleanly.
func (s *ConciliacionService) applyMatch(actor string, transactionID, ordenID uuid.UUID, confidence int, manual bool) (*models.Pago, error) {
	var pago *models.Pago
	err := s.inTx(func(repos txRepos) error {
		transaction, err := repos.transacciones.GetByID(transactionID.String())
		if err != nil {
			return err
		}
		if transaction.Matched {
			return reconcile.ErrAlreadyMatched
		}

		orden, err := repos.ordenes.GetByID(ordenID.String())
		if err != nil {
			return fmt.Errorf("orden no encontrada: %w", err)
		}
		if !orden.Pagable() {
			verr := newValidationError()
			verr.add("orden_compra_id", "la orden no admite pagos en su estado actual")
			return verr
		}

		rows, err := repos.transacciones.MarkMatched(transactionID, ordenID, confidence, manual)
		if err != nil {
			return fmt.Errorf("error marcando transacción como conciliada: %w", err)
		}
		if rows == 0 {
			return reconcile.ErrAlreadyMatched
		}

		ahora := time.Now()
		pago = &models.Pago{
			NumeroPago:         generarNumeroPago(ahora),
			OrdenCompraID:      orden.ID,
			ProveedorID:        orden.ProveedorID,
			ObraID:             orden.ObraID,
			BankTransactionID:  &transaction.ID,
			Monto:              transaction.Monto,
			TipoPago:           models.TipoTransferencia,
			ReferenciaBancaria: transaction.ReferenciaBancaria,
			FechaPago:          transaction.Fecha,
			FechaAplicacion:    &ahora,
			Estado:             models.PagoAplicado,
			Observaciones:      "Generado por conciliación bancaria",
		}
		if err := repos.pagos.Create(pago); err != nil {
			return fmt.Errorf("error creando pago de conciliación: %w", err)
		}

		if transaction.Monto.GreaterThan(orden.SaldoPendiente) {
			utils.LogWarn("conciliación excede el saldo pendiente", map[string]interface{}{
				"orden_id": orden.ID.String(),
				"monto":    transaction.Monto.String(),
				"saldo":    orden.SaldoPendiente.String(),
			})
		}

		orden.AplicarMonto(transaction.Monto)
		return repos.ordenes.Update(orden)
	})
	if err != nil {
		return nil, err
	}

	s.auditor.Record(actor, audit.AccionMatch, "bank_transaction", transactionID.String(),
		fmt.Sprintf("conciliada con orden %s (confianza %d)", ordenID, confidence))
	return pago, nil
}
