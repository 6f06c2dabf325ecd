package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/core/folio"
	"github.com/obratec/obras-backoffice-be/internal/core/totals"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"github.com/obratec/obras-backoffice-be/internal/shared/utils"
	"github.com/shopspring/decimal"
)

type OrdenItemRequest struct {
	Descripcion      string          `json:"descripcion"`
	Especificaciones string          `json:"especificaciones"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Unidad           string          `json:"unidad"`
	PrecioUnitario   decimal.Decimal `json:"precio_unitario"`
}

type CreateOrdenRequest struct {
	ObraID        string `json:"obra_id"`
	ProveedorID   string `json:"proveedor_id"`
	RequisicionID string `json:"requisicion_id"`

	Comprador          string `json:"comprador"`
	CompradorIniciales string `json:"comprador_iniciales"`

	FechaOrden             *time.Time `json:"fecha_orden"`
	FechaEntregaProgramada *time.Time `json:"fecha_entrega_programada"`
	TipoEntrega            string     `json:"tipo_entrega"`

	Items []OrdenItemRequest `json:"items"`

	DescuentoModo  string          `json:"descuento_modo"`
	DescuentoValor decimal.Decimal `json:"descuento_valor"`
	TieneIVA       bool            `json:"tiene_iva"`

	FormaPago     string `json:"forma_pago"`
	DiasCredito   int    `json:"dias_credito"`
	Observaciones string `json:"observaciones"`
}

// UpdateOrdenRequest mutates the editable portion of an order. Any change to
// items, discount or IVA triggers a full recomputation of the totals block.
type UpdateOrdenRequest struct {
	FechaEntregaProgramada *time.Time `json:"fecha_entrega_programada"`
	TipoEntrega            string     `json:"tipo_entrega"`

	Items []OrdenItemRequest `json:"items"`

	DescuentoModo  string          `json:"descuento_modo"`
	DescuentoValor decimal.Decimal `json:"descuento_valor"`
	TieneIVA       bool            `json:"tiene_iva"`

	FormaPago     string `json:"forma_pago"`
	DiasCredito   int    `json:"dias_credito"`
	Observaciones string `json:"observaciones"`
}

type OrdenService struct {
	ordenRepo     repositories.OrdenRepo
	obraRepo      repositories.ObraRepo
	proveedorRepo repositories.ProveedorRepo
	auditor       audit.Recorder
}

func NewOrdenService(
	ordenRepo repositories.OrdenRepo,
	obraRepo repositories.ObraRepo,
	proveedorRepo repositories.ProveedorRepo,
	auditor audit.Recorder,
) *OrdenService {
	return &OrdenService{
		ordenRepo:     ordenRepo,
		obraRepo:      obraRepo,
		proveedorRepo: proveedorRepo,
		auditor:       auditor,
	}
}

// estado transitions allowed from each order state
var ordenTransiciones = map[string][]string{
	models.OrdenBorrador:   {models.OrdenPendiente, models.OrdenCancelada},
	models.OrdenPendiente:  {models.OrdenAprobada, models.OrdenRechazada, models.OrdenCancelada},
	models.OrdenAprobada:   {models.OrdenEnTransito, models.OrdenEntregada, models.OrdenCancelada},
	models.OrdenRechazada:  {models.OrdenPendiente, models.OrdenCancelada},
	models.OrdenEnTransito: {models.OrdenEntregada, models.OrdenCancelada},
}

func (s *OrdenService) Create(actor string, req CreateOrdenRequest) (*models.OrdenCompra, error) {
	if err := s.validate(req.Items, req.DescuentoModo, req.CompradorIniciales); err != nil {
		return nil, err
	}

	obra, err := s.obraRepo.GetByID(req.ObraID)
	if err != nil {
		return nil, fmt.Errorf("obra no encontrada: %w", err)
	}
	proveedor, err := s.proveedorRepo.GetByID(req.ProveedorID)
	if err != nil {
		return nil, fmt.Errorf("proveedor no encontrado: %w", err)
	}
	if !proveedor.Activo {
		verr := newValidationError()
		verr.add("proveedor_id", "el proveedor está desactivado")
		return nil, verr
	}

	lineItems, calc, err := s.calcular(req.Items, req.DescuentoModo, req.DescuentoValor, req.TieneIVA)
	if err != nil {
		return nil, err
	}

	ultimo, err := s.ordenRepo.MaxConsecutivoByObra(obra.ID)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo consecutivo de orden: %w", err)
	}
	consecutivo := ultimo + 1
	numeroOrden := folio.OrdenCompra(obra.Codigo, req.CompradorIniciales, proveedor.Codigo, consecutivo)

	fechaOrden := time.Now()
	if req.FechaOrden != nil {
		fechaOrden = *req.FechaOrden
	}

	orden := &models.OrdenCompra{
		NumeroOrden:            numeroOrden,
		Consecutivo:            consecutivo,
		ObraID:                 obra.ID,
		ProveedorID:            proveedor.ID,
		Comprador:              req.Comprador,
		CompradorIniciales:     folio.Normalize(req.CompradorIniciales),
		FechaOrden:             fechaOrden,
		FechaEntregaProgramada: req.FechaEntregaProgramada,
		TipoEntrega:            tipoEntregaODefault(req.TipoEntrega),
		Subtotal:               calc.Subtotal,
		DescuentoModo:          req.DescuentoModo,
		DescuentoValor:         req.DescuentoValor.Round(2),
		DescuentoMonto:         calc.DescuentoMonto,
		TieneIVA:               req.TieneIVA,
		IVA:                    calc.IVA,
		Total:                  calc.Total,
		FormaPago:              formaPagoODefault(req.FormaPago),
		DiasCredito:            req.DiasCredito,
		MontoPagado:            decimal.Zero,
		SaldoPendiente:         calc.Total,
		Estado:                 models.OrdenPendiente,
		EstadoPago:             models.PagoOrdenPendiente,
		Observaciones:          req.Observaciones,
		Items:                  buildOrdenItems(req.Items, lineItems),
	}

	if req.RequisicionID != "" {
		rid, err := parseUUID(req.RequisicionID)
		if err != nil {
			verr := newValidationError()
			verr.add("requisicion_id", "identificador de requisición inválido")
			return nil, verr
		}
		orden.RequisicionID = &rid
	}

	if orden.FormaPago == "Crédito" {
		dias := orden.DiasCredito
		if dias == 0 {
			dias = proveedor.DiasCredito
			orden.DiasCredito = dias
		}
		vencimiento := fechaOrden.AddDate(0, 0, dias)
		orden.FechaVencimientoPago = &vencimiento
	}

	if err := s.ordenRepo.Create(orden); err != nil {
		return nil, fmt.Errorf("error creando orden de compra: %w", err)
	}

	s.auditor.Record(actor, audit.AccionCrear, "orden_compra", orden.ID.String(), orden.NumeroOrden)
	utils.LogInfo("orden de compra creada", map[string]interface{}{
		"orden_id":     orden.ID.String(),
		"numero_orden": orden.NumeroOrden,
		"total":        orden.Total.String(),
	})
	return orden, nil
}

func (s *OrdenService) GetByID(id string) (*models.OrdenCompra, error) {
	return s.ordenRepo.GetByID(id)
}

func (s *OrdenService) GetByNumeroOrden(numeroOrden string) (*models.OrdenCompra, error) {
	return s.ordenRepo.GetByNumeroOrden(numeroOrden)
}

func (s *OrdenService) List(filter repositories.OrdenFilter) ([]models.OrdenCompra, error) {
	return s.ordenRepo.List(filter)
}

func (s *OrdenService) Update(actor, id string, req UpdateOrdenRequest) (*models.OrdenCompra, error) {
	orden, err := s.ordenRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if orden.Estado == models.OrdenCancelada {
		verr := newValidationError()
		verr.add("estado", "una orden cancelada no se puede editar")
		return nil, verr
	}

	if err := s.validate(req.Items, req.DescuentoModo, orden.CompradorIniciales); err != nil {
		return nil, err
	}

	lineItems, calc, err := s.calcular(req.Items, req.DescuentoModo, req.DescuentoValor, req.TieneIVA)
	if err != nil {
		return nil, err
	}

	orden.FechaEntregaProgramada = req.FechaEntregaProgramada
	orden.TipoEntrega = tipoEntregaODefault(req.TipoEntrega)
	orden.DescuentoModo = req.DescuentoModo
	orden.DescuentoValor = req.DescuentoValor.Round(2)
	orden.TieneIVA = req.TieneIVA
	orden.Subtotal = calc.Subtotal
	orden.DescuentoMonto = calc.DescuentoMonto
	orden.IVA = calc.IVA
	orden.Total = calc.Total
	orden.FormaPago = formaPagoODefault(req.FormaPago)
	orden.DiasCredito = req.DiasCredito
	orden.Observaciones = req.Observaciones

	if orden.FormaPago == "Crédito" {
		vencimiento := orden.FechaOrden.AddDate(0, 0, orden.DiasCredito)
		orden.FechaVencimientoPago = &vencimiento
	} else {
		orden.FechaVencimientoPago = nil
	}

	// The total may have moved; rebase the balance against payments applied.
	orden.AplicarMonto(decimal.Zero)

	if err := s.ordenRepo.ReplaceItems(orden, buildOrdenItems(req.Items, lineItems)); err != nil {
		return nil, fmt.Errorf("error actualizando orden de compra: %w", err)
	}

	s.auditor.Record(actor, audit.AccionActualizar, "orden_compra", orden.ID.String(), orden.NumeroOrden)
	return orden, nil
}

func (s *OrdenService) CambiarEstado(actor, id, estado string) (*models.OrdenCompra, error) {
	orden, err := s.ordenRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !transicionPermitida(orden.Estado, estado) {
		verr := newValidationError()
		verr.add("estado", fmt.Sprintf("transición no permitida: %s → %s", orden.Estado, estado))
		return nil, verr
	}

	anterior := orden.Estado
	if err := s.ordenRepo.UpdateEstado(id, estado); err != nil {
		return nil, fmt.Errorf("error cambiando estado de orden: %w", err)
	}
	orden.Estado = estado

	s.auditor.Record(actor, audit.AccionEstado, "orden_compra", orden.ID.String(),
		fmt.Sprintf("%s → %s", anterior, estado))
	utils.LogInfo("estado de orden actualizado", map[string]interface{}{
		"orden_id": orden.ID.String(),
		"anterior": anterior,
		"nuevo":    estado,
	})
	return orden, nil
}

func (s *OrdenService) Delete(actor, id string) error {
	orden, err := s.ordenRepo.GetByID(id)
	if err != nil {
		return err
	}
	if orden.Estado != models.OrdenBorrador && orden.Estado != models.OrdenCancelada {
		verr := newValidationError()
		verr.add("estado", "solo se eliminan órdenes en borrador o canceladas")
		return verr
	}
	if err := s.ordenRepo.Delete(id); err != nil {
		return fmt.Errorf("error eliminando orden de compra: %w", err)
	}
	s.auditor.Record(actor, audit.AccionEliminar, "orden_compra", id, orden.NumeroOrden)
	return nil
}

func (s *OrdenService) calcular(items []OrdenItemRequest, modo string, valor decimal.Decimal, tieneIVA bool) ([]totals.LineItem, totals.OrderTotals, error) {
	lineItems := make([]totals.LineItem, len(items))
	for i, item := range items {
		lineItems[i] = totals.LineItem{
			Descripcion:    item.Descripcion,
			Unidad:         item.Unidad,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
		}
	}

	lineItems, err := totals.NormalizeItems(lineItems)
	if err != nil {
		return nil, totals.OrderTotals{}, mapTotalsError(err)
	}

	calc, err := totals.Calculate(lineItems, totals.DiscountMode(modo), valor, tieneIVA)
	if err != nil {
		return nil, totals.OrderTotals{}, mapTotalsError(err)
	}
	return lineItems, calc, nil
}

func (s *OrdenService) validate(items []OrdenItemRequest, modo string, iniciales string) error {
	verr := newValidationError()
	if len(items) == 0 {
		verr.add("items", "la orden requiere al menos una partida")
	}
	for i, item := range items {
		if strings.TrimSpace(item.Descripcion) == "" {
			verr.add(fmt.Sprintf("items.%d.descripcion", i), "la descripción es obligatoria")
		}
		if strings.TrimSpace(item.Unidad) == "" {
			verr.add(fmt.Sprintf("items.%d.unidad", i), "la unidad es obligatoria")
		}
	}
	switch totals.DiscountMode(modo) {
	case totals.DiscountPercent, totals.DiscountAmount:
	default:
		verr.add("descuento_modo", "el modo de descuento debe ser porcentaje o monto")
	}
	if strings.TrimSpace(iniciales) == "" {
		verr.add("comprador_iniciales", "las iniciales del comprador son obligatorias")
	}
	return verr.orNil()
}

func mapTotalsError(err error) error {
	verr := newValidationError()
	switch {
	case errors.Is(err, totals.ErrInvalidQuantity):
		verr.add("items", "la cantidad no puede ser negativa")
	case errors.Is(err, totals.ErrInvalidPrice):
		verr.add("items", "el precio unitario no puede ser negativo")
	case errors.Is(err, totals.ErrInvalidDiscount):
		verr.add("descuento_valor", "descuento fuera de rango")
	case errors.Is(err, totals.ErrInvalidMode):
		verr.add("descuento_modo", "modo de descuento no reconocido")
	default:
		return err
	}
	return verr
}

func buildOrdenItems(reqs []OrdenItemRequest, lineItems []totals.LineItem) []models.OrdenCompraItem {
	out := make([]models.OrdenCompraItem, len(lineItems))
	for i, li := range lineItems {
		out[i] = models.OrdenCompraItem{
			Descripcion:    li.Descripcion,
			Unidad:         li.Unidad,
			Cantidad:       li.Cantidad,
			PrecioUnitario: li.PrecioUnitario,
			Total:          li.Total,
			Orden:          i,
		}
		if i < len(reqs) {
			out[i].Especificaciones = reqs[i].Especificaciones
		}
	}
	return out
}

func transicionPermitida(desde, hacia string) bool {
	for _, permitido := range ordenTransiciones[desde] {
		if permitido == hacia {
			return true
		}
	}
	return false
}

func tipoEntregaODefault(tipo string) string {
	if tipo == models.Recoleccion {
		return models.Recoleccion
	}
	return models.EntregaEnObra
}

func formaPagoODefault(forma string) string {
	switch forma {
	case "Contado", "Crédito", "Anticipo":
		return forma
	}
	return "Crédito"
}
