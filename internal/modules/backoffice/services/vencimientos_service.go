package services

import (
	"fmt"
	"time"

	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"github.com/obratec/obras-backoffice-be/internal/shared/utils"
)

// VencimientosService flags credit orders whose payment due date passed
// while they still carry a balance. It runs from the scheduler but can also
// be triggered by hand.
type VencimientosService struct {
	ordenRepo repositories.OrdenRepo
	auditor   audit.Recorder
}

func NewVencimientosService(ordenRepo repositories.OrdenRepo, auditor audit.Recorder) *VencimientosService {
	return &VencimientosService{ordenRepo: ordenRepo, auditor: auditor}
}

// Scan marks every overdue order as Vencida and returns how many were
// flagged. Already flagged orders are not revisited.
func (s *VencimientosService) Scan(ref time.Time) (int, error) {
	ordenes, err := s.ordenRepo.ListPagoVencido(ref)
	if err != nil {
		return 0, fmt.Errorf("error listando órdenes vencidas: %w", err)
	}

	flagged := 0
	for i := range ordenes {
		orden := &ordenes[i]
		orden.EstadoPago = models.PagoOrdenVencida
		if err := s.ordenRepo.Update(orden); err != nil {
			utils.LogError("error marcando orden vencida", err, map[string]interface{}{
				"orden_id": orden.ID.String(),
			})
			continue
		}
		flagged++

		s.auditor.Record("sistema", audit.AccionEstado, "orden_compra", orden.ID.String(),
			"pago vencido: "+orden.NumeroOrden)
		utils.LogWarn("orden con pago vencido", map[string]interface{}{
			"orden_id":     orden.ID.String(),
			"numero_orden": orden.NumeroOrden,
			"saldo":        orden.SaldoPendiente.String(),
			"vencimiento":  orden.FechaVencimientoPago,
		})
	}
	return flagged, nil
}
