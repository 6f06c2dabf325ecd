package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/core/folio"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"github.com/obratec/obras-backoffice-be/internal/shared/utils"
	"github.com/shopspring/decimal"
)

type RequisicionItemRequest struct {
	Descripcion string          `json:"descripcion"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Unidad      string          `json:"unidad"`
}

type CreateRequisicionRequest struct {
	ObraID             string                   `json:"obra_id"`
	ResidenteIniciales string                   `json:"residente_iniciales"`
	Urgencia           string                   `json:"urgencia"`
	FechaRequerida     *time.Time               `json:"fecha_requerida"`
	Observaciones      string                   `json:"observaciones"`
	Items              []RequisicionItemRequest `json:"items"`
}

// ConvertirRequest turns an approved requisition into a purchase order.
// Lines come back from the buyer with negotiated unit prices; quantities may
// differ from the requested ones.
type ConvertirRequest struct {
	ProveedorID        string             `json:"proveedor_id"`
	Comprador          string             `json:"comprador"`
	CompradorIniciales string             `json:"comprador_iniciales"`
	Items              []OrdenItemRequest `json:"items"`
	DescuentoModo      string             `json:"descuento_modo"`
	DescuentoValor     decimal.Decimal    `json:"descuento_valor"`
	TieneIVA           bool               `json:"tiene_iva"`
	FormaPago          string             `json:"forma_pago"`
	DiasCredito        int                `json:"dias_credito"`
}

type RequisicionService struct {
	requisicionRepo repositories.RequisicionRepo
	obraRepo        repositories.ObraRepo
	ordenService    *OrdenService
	auditor         audit.Recorder
}

func NewRequisicionService(
	requisicionRepo repositories.RequisicionRepo,
	obraRepo repositories.ObraRepo,
	ordenService *OrdenService,
	auditor audit.Recorder,
) *RequisicionService {
	return &RequisicionService{
		requisicionRepo: requisicionRepo,
		obraRepo:        obraRepo,
		ordenService:    ordenService,
		auditor:         auditor,
	}
}

func (s *RequisicionService) Create(actor string, req CreateRequisicionRequest) (*models.Requisicion, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	obra, err := s.obraRepo.GetByID(req.ObraID)
	if err != nil {
		return nil, fmt.Errorf("obra no encontrada: %w", err)
	}

	iniciales := folio.Normalize(req.ResidenteIniciales)
	if iniciales == "" {
		iniciales = folio.Normalize(obra.ResidenteIniciales)
	}

	ultimo, err := s.requisicionRepo.MaxConsecutivoByObra(obra.ID)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo consecutivo de requisición: %w", err)
	}
	consecutivo := ultimo + 1

	requisicion := &models.Requisicion{
		NumeroRequisicion:  folio.Requisicion(obra.Codigo, iniciales, consecutivo),
		Consecutivo:        consecutivo,
		ObraID:             obra.ID,
		ResidenteIniciales: iniciales,
		Urgencia:           urgenciaODefault(req.Urgencia),
		Estado:             models.RequisicionPendiente,
		FechaRequerida:     req.FechaRequerida,
		Observaciones:      req.Observaciones,
	}
	for i, item := range req.Items {
		requisicion.Items = append(requisicion.Items, models.RequisicionItem{
			Descripcion: strings.TrimSpace(item.Descripcion),
			Cantidad:    item.Cantidad,
			Unidad:      strings.TrimSpace(item.Unidad),
			Orden:       i,
		})
	}

	if err := s.requisicionRepo.Create(requisicion); err != nil {
		return nil, fmt.Errorf("error creando requisición: %w", err)
	}

	s.auditor.Record(actor, audit.AccionCrear, "requisicion", requisicion.ID.String(), requisicion.NumeroRequisicion)
	utils.LogInfo("requisición creada", map[string]interface{}{
		"requisicion_id": requisicion.ID.String(),
		"numero":         requisicion.NumeroRequisicion,
	})
	return requisicion, nil
}

func (s *RequisicionService) GetByID(id string) (*models.Requisicion, error) {
	return s.requisicionRepo.GetByID(id)
}

func (s *RequisicionService) List(obraID, estado string, limit int) ([]models.Requisicion, error) {
	return s.requisicionRepo.List(obraID, estado, limit)
}

func (s *RequisicionService) CambiarEstado(actor, id, estado string) (*models.Requisicion, error) {
	switch estado {
	case models.RequisicionPendiente, models.RequisicionEnRevision, models.RequisicionAprobada,
		models.RequisicionRechazada, models.RequisicionCancelada:
	default:
		verr := newValidationError()
		verr.add("estado", "estado de requisición no reconocido")
		return nil, verr
	}

	requisicion, err := s.requisicionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if requisicion.Estado == models.RequisicionConvertidaOC {
		verr := newValidationError()
		verr.add("estado", "una requisición convertida a OC ya no cambia de estado")
		return nil, verr
	}

	anterior := requisicion.Estado
	if err := s.requisicionRepo.UpdateEstado(id, estado); err != nil {
		return nil, fmt.Errorf("error cambiando estado de requisición: %w", err)
	}
	requisicion.Estado = estado

	s.auditor.Record(actor, audit.AccionEstado, "requisicion", id,
		fmt.Sprintf("%s → %s", anterior, estado))
	return requisicion, nil
}

// Convertir creates a purchase order from an approved requisition and marks
// the requisition as converted. If no lines were supplied, the requested
// lines are carried over verbatim with zero prices (to be priced later).
func (s *RequisicionService) Convertir(actor, id string, req ConvertirRequest) (*models.OrdenCompra, error) {
	requisicion, err := s.requisicionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if requisicion.Estado != models.RequisicionAprobada {
		verr := newValidationError()
		verr.add("estado", "solo una requisición aprobada se puede convertir a OC")
		return nil, verr
	}

	items := req.Items
	if len(items) == 0 {
		items = make([]OrdenItemRequest, 0, len(requisicion.Items))
		for _, it := range requisicion.Items {
			items = append(items, OrdenItemRequest{
				Descripcion:    it.Descripcion,
				Cantidad:       it.Cantidad,
				Unidad:         it.Unidad,
				PrecioUnitario: decimal.Zero,
			})
		}
	}

	modo := req.DescuentoModo
	if modo == "" {
		modo = "porcentaje"
	}

	orden, err := s.ordenService.Create(actor, CreateOrdenRequest{
		ObraID:                 requisicion.ObraID.String(),
		ProveedorID:            req.ProveedorID,
		RequisicionID:          requisicion.ID.String(),
		Comprador:              req.Comprador,
		CompradorIniciales:     req.CompradorIniciales,
		FechaEntregaProgramada: requisicion.FechaRequerida,
		Items:                  items,
		DescuentoModo:          modo,
		DescuentoValor:         req.DescuentoValor,
		TieneIVA:               req.TieneIVA,
		FormaPago:              req.FormaPago,
		DiasCredito:            req.DiasCredito,
	})
	if err != nil {
		return nil, err
	}

	if err := s.requisicionRepo.UpdateEstado(id, models.RequisicionConvertidaOC); err != nil {
		return nil, fmt.Errorf("error marcando requisición como convertida: %w", err)
	}

	s.auditor.Record(actor, audit.AccionEstado, "requisicion", id,
		fmt.Sprintf("convertida a OC %s", orden.NumeroOrden))
	utils.LogInfo("requisición convertida a orden de compra", map[string]interface{}{
		"requisicion_id": id,
		"numero_orden":   orden.NumeroOrden,
	})
	return orden, nil
}

func (s *RequisicionService) Delete(actor, id string) error {
	requisicion, err := s.requisicionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if requisicion.Estado == models.RequisicionConvertidaOC {
		verr := newValidationError()
		verr.add("estado", "una requisición convertida a OC no se puede eliminar")
		return verr
	}
	if err := s.requisicionRepo.Delete(id); err != nil {
		return fmt.Errorf("error eliminando requisición: %w", err)
	}
	s.auditor.Record(actor, audit.AccionEliminar, "requisicion", id, requisicion.NumeroRequisicion)
	return nil
}

func (s *RequisicionService) validate(req CreateRequisicionRequest) error {
	verr := newValidationError()
	if len(req.Items) == 0 {
		verr.add("items", "la requisición requiere al menos una partida")
	}
	for i, item := range req.Items {
		if strings.TrimSpace(item.Descripcion) == "" {
			verr.add(fmt.Sprintf("items.%d.descripcion", i), "la descripción es obligatoria")
		}
		if strings.TrimSpace(item.Unidad) == "" {
			verr.add(fmt.Sprintf("items.%d.unidad", i), "la unidad es obligatoria")
		}
		if item.Cantidad.LessThanOrEqual(decimal.Zero) {
			verr.add(fmt.Sprintf("items.%d.cantidad", i), "la cantidad debe ser mayor a cero")
		}
	}
	return verr.orNil()
}

func urgenciaODefault(urgencia string) string {
	switch urgencia {
	case models.UrgenciaUrgente, models.UrgenciaPlaneado:
		return urgencia
	}
	return models.UrgenciaNormal
}
