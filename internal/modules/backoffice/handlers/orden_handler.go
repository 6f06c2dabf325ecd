package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/obratec/obras-backoffice-be/internal/core/auth"
	"github.com/obratec/obras-backoffice-be/internal/core/export"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/services"
)

type OrdenHandler struct {
	ordenService     *services.OrdenService
	obraService      *services.ObraService
	proveedorService *services.ProveedorService
	exportService    *export.Service
}

func NewOrdenHandler(
	ordenService *services.OrdenService,
	obraService *services.ObraService,
	proveedorService *services.ProveedorService,
	exportService *export.Service,
) *OrdenHandler {
	return &OrdenHandler{
		ordenService:     ordenService,
		obraService:      obraService,
		proveedorService: proveedorService,
		exportService:    exportService,
	}
}

// CreateOrden godoc
// @Summary Create purchase order
// @Description Create a purchase order with calculated totals and generated folio
// @Tags Ordenes
// @Accept json
// @Produce json
// @Param orden body services.CreateOrdenRequest true "Order to create"
// @Success 201 {object} models.OrdenCompra
// @Router /ordenes-compra [post]
func (h *OrdenHandler) CreateOrden(c *fiber.Ctx) error {
	var req services.CreateOrdenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	orden, err := h.ordenService.Create(auth.Actor(c), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(orden)
}

// ListOrdenes godoc
// @Summary List purchase orders
// @Tags Ordenes
// @Produce json
// @Param obra_id query string false "Obra filter"
// @Param proveedor_id query string false "Proveedor filter"
// @Param estado query string false "Estado filter"
// @Param estado_pago query string false "Estado de pago filter"
// @Param limit query int false "Max results"
// @Success 200 {array} models.OrdenCompra
// @Router /ordenes-compra [get]
func (h *OrdenHandler) ListOrdenes(c *fiber.Ctx) error {
	ordenes, err := h.ordenService.List(repositories.OrdenFilter{
		ObraID:      c.Query("obra_id"),
		ProveedorID: c.Query("proveedor_id"),
		Estado:      c.Query("estado"),
		EstadoPago:  c.Query("estado_pago"),
		Limit:       queryLimit(c),
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(ordenes)
}

// GetOrden godoc
// @Summary Get purchase order
// @Tags Ordenes
// @Produce json
// @Param id path string true "Orden ID"
// @Success 200 {object} models.OrdenCompra
// @Router /ordenes-compra/{id} [get]
func (h *OrdenHandler) GetOrden(c *fiber.Ctx) error {
	orden, err := h.ordenService.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(orden)
}

// UpdateOrden godoc
// @Summary Update purchase order
// @Description Replace items/discount/IVA and recompute the totals snapshot
// @Tags Ordenes
// @Accept json
// @Produce json
// @Param id path string true "Orden ID"
// @Param orden body services.UpdateOrdenRequest true "Order data"
// @Success 200 {object} models.OrdenCompra
// @Router /ordenes-compra/{id} [put]
func (h *OrdenHandler) UpdateOrden(c *fiber.Ctx) error {
	var req services.UpdateOrdenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	orden, err := h.ordenService.Update(auth.Actor(c), c.Params("id"), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(orden)
}

// CambiarEstadoOrden godoc
// @Summary Change purchase order estado
// @Tags Ordenes
// @Accept json
// @Produce json
// @Param id path string true "Orden ID"
// @Success 200 {object} models.OrdenCompra
// @Router /ordenes-compra/{id}/estado [patch]
func (h *OrdenHandler) CambiarEstadoOrden(c *fiber.Ctx) error {
	var req struct {
		Estado string `json:"estado"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	orden, err := h.ordenService.CambiarEstado(auth.Actor(c), c.Params("id"), req.Estado)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(orden)
}

// DeleteOrden godoc
// @Summary Delete purchase order
// @Tags Ordenes
// @Produce json
// @Param id path string true "Orden ID"
// @Success 200 {object} map[string]interface{}
// @Router /ordenes-compra/{id} [delete]
func (h *OrdenHandler) DeleteOrden(c *fiber.Ctx) error {
	if err := h.ordenService.Delete(auth.Actor(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Orden eliminada"})
}

// OrdenPDF godoc
// @Summary Download purchase order PDF
// @Description Render the printable purchase order with QR folio
// @Tags Ordenes
// @Produce application/pdf
// @Param id path string true "Orden ID"
// @Success 200 {file} binary
// @Router /ordenes-compra/{id}/pdf [get]
func (h *OrdenHandler) OrdenPDF(c *fiber.Ctx) error {
	orden, err := h.ordenService.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}

	obra, err := h.obraService.GetByID(orden.ObraID.String())
	if err != nil {
		return handleError(c, err)
	}
	proveedor, err := h.proveedorService.GetByID(orden.ProveedorID.String())
	if err != nil {
		return handleError(c, err)
	}

	doc := &export.OrdenDocumento{
		Folio:          orden.NumeroOrden,
		FechaOrden:     orden.FechaOrden,
		ObraCodigo:     obra.Codigo,
		ObraNombre:     obra.Nombre,
		Proveedor:      proveedor.Nombre,
		ProveedorRFC:   proveedor.RFC,
		Comprador:      orden.Comprador,
		FormaPago:      orden.FormaPago,
		DiasCredito:    orden.DiasCredito,
		TipoEntrega:    orden.TipoEntrega,
		Observaciones:  orden.Observaciones,
		Subtotal:       orden.Subtotal,
		DescuentoMonto: orden.DescuentoMonto,
		TieneIVA:       orden.TieneIVA,
		IVA:            orden.IVA,
		Total:          orden.Total,
	}
	for _, item := range orden.Items {
		doc.Items = append(doc.Items, export.OrdenDocumentoItem{
			Descripcion:    item.Descripcion,
			Unidad:         item.Unidad,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Total:          item.Total,
		})
	}

	pdf, err := h.exportService.OrdenPDF(doc)
	if err != nil {
		return handleError(c, err)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", orden.NumeroOrden))
	return c.Send(pdf)
}

// ExportOrdenes godoc
// @Summary Export purchase orders
// @Description Export the filtered order list as xlsx or pdf
// @Tags Ordenes
// @Produce application/octet-stream
// @Param formato query string false "xlsx or pdf" default(xlsx)
// @Param obra_id query string false "Obra filter"
// @Param estado query string false "Estado filter"
// @Success 200 {file} binary
// @Router /ordenes-compra/export [get]
func (h *OrdenHandler) ExportOrdenes(c *fiber.Ctx) error {
	ordenes, err := h.ordenService.List(repositories.OrdenFilter{
		ObraID: c.Query("obra_id"),
		Estado: c.Query("estado"),
	})
	if err != nil {
		return handleError(c, err)
	}

	data := &export.TableData{
		Title:     "Órdenes de Compra",
		Headers:   []string{"Folio", "Fecha", "Estado", "Estado Pago", "Subtotal", "Descuento", "IVA", "Total", "Saldo"},
		CreatedAt: time.Now(),
	}
	for _, orden := range ordenes {
		data.Rows = append(data.Rows, ordenExportRow(&orden))
	}

	formato := c.Query("formato", export.FormatExcel)
	payload, contentType, err := h.exportService.Table(data, formato)
	if err != nil {
		return handleError(c, err)
	}

	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=ordenes-compra.%s", formato))
	return c.Send(payload)
}

func ordenExportRow(orden *models.OrdenCompra) []interface{} {
	return []interface{}{
		orden.NumeroOrden,
		orden.FechaOrden.Format("2006-01-02"),
		orden.Estado,
		orden.EstadoPago,
		orden.Subtotal.StringFixed(2),
		orden.DescuentoMonto.StringFixed(2),
		orden.IVA.StringFixed(2),
		orden.Total.StringFixed(2),
		orden.SaldoPendiente.StringFixed(2),
	}
}
