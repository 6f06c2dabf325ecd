package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obratec/obras-backoffice-be/internal/core/auth"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/services"
)

type PagoHandler struct {
	pagoService *services.PagoService
}

func NewPagoHandler(pagoService *services.PagoService) *PagoHandler {
	return &PagoHandler{
		pagoService: pagoService,
	}
}

// CreatePago godoc
// @Summary Register payment
// @Description Capture a manual payment against a purchase order
// @Tags Pagos
// @Accept json
// @Produce json
// @Param pago body services.CreatePagoRequest true "Payment to register"
// @Success 201 {object} models.Pago
// @Router /pagos [post]
func (h *PagoHandler) CreatePago(c *fiber.Ctx) error {
	var req services.CreatePagoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	pago, err := h.pagoService.Create(auth.Actor(c), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(pago)
}

// ListPagos godoc
// @Summary List payments
// @Tags Pagos
// @Produce json
// @Param obra_id query string false "Obra filter"
// @Param orden_id query string false "Orden filter"
// @Param limit query int false "Max results"
// @Success 200 {array} models.Pago
// @Router /pagos [get]
func (h *PagoHandler) ListPagos(c *fiber.Ctx) error {
	if ordenID := c.Query("orden_id"); ordenID != "" {
		pagos, err := h.pagoService.ListByOrden(ordenID)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(pagos)
	}

	pagos, err := h.pagoService.List(c.Query("obra_id"), queryLimit(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(pagos)
}

// GetPago godoc
// @Summary Get payment
// @Tags Pagos
// @Produce json
// @Param id path string true "Pago ID"
// @Success 200 {object} models.Pago
// @Router /pagos/{id} [get]
func (h *PagoHandler) GetPago(c *fiber.Ctx) error {
	pago, err := h.pagoService.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(pago)
}

// CancelarPago godoc
// @Summary Cancel payment
// @Description Cancel an applied payment and restore the order balance
// @Tags Pagos
// @Accept json
// @Produce json
// @Param id path string true "Pago ID"
// @Success 200 {object} models.Pago
// @Router /pagos/{id}/cancelar [patch]
func (h *PagoHandler) CancelarPago(c *fiber.Ctx) error {
	var req struct {
		Motivo string `json:"motivo"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	pago, err := h.pagoService.Cancelar(auth.Actor(c), c.Params("id"), req.Motivo)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(pago)
}
