package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obratec/obras-backoffice-be/internal/core/auth"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/services"
)

type RequisicionHandler struct {
	requisicionService *services.RequisicionService
}

func NewRequisicionHandler(requisicionService *services.RequisicionService) *RequisicionHandler {
	return &RequisicionHandler{
		requisicionService: requisicionService,
	}
}

// CreateRequisicion godoc
// @Summary Create requisición
// @Description Raise a material request for an obra
// @Tags Requisiciones
// @Accept json
// @Produce json
// @Param requisicion body services.CreateRequisicionRequest true "Requisición to create"
// @Success 201 {object} models.Requisicion
// @Router /requisiciones [post]
func (h *RequisicionHandler) CreateRequisicion(c *fiber.Ctx) error {
	var req services.CreateRequisicionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	requisicion, err := h.requisicionService.Create(auth.Actor(c), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(requisicion)
}

// ListRequisiciones godoc
// @Summary List requisiciones
// @Tags Requisiciones
// @Produce json
// @Param obra_id query string false "Obra filter"
// @Param estado query string false "Estado filter"
// @Param limit query int false "Max results"
// @Success 200 {array} models.Requisicion
// @Router /requisiciones [get]
func (h *RequisicionHandler) ListRequisiciones(c *fiber.Ctx) error {
	requisiciones, err := h.requisicionService.List(c.Query("obra_id"), c.Query("estado"), queryLimit(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(requisiciones)
}

// GetRequisicion godoc
// @Summary Get requisición
// @Tags Requisiciones
// @Produce json
// @Param id path string true "Requisición ID"
// @Success 200 {object} models.Requisicion
// @Router /requisiciones/{id} [get]
func (h *RequisicionHandler) GetRequisicion(c *fiber.Ctx) error {
	requisicion, err := h.requisicionService.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(requisicion)
}

// CambiarEstadoRequisicion godoc
// @Summary Change requisición estado
// @Tags Requisiciones
// @Accept json
// @Produce json
// @Param id path string true "Requisición ID"
// @Success 200 {object} models.Requisicion
// @Router /requisiciones/{id}/estado [patch]
func (h *RequisicionHandler) CambiarEstadoRequisicion(c *fiber.Ctx) error {
	var req struct {
		Estado string `json:"estado"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	requisicion, err := h.requisicionService.CambiarEstado(auth.Actor(c), c.Params("id"), req.Estado)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(requisicion)
}

// ConvertirRequisicion godoc
// @Summary Convert requisición to purchase order
// @Description Create a purchase order from an approved requisition
// @Tags Requisiciones
// @Accept json
// @Produce json
// @Param id path string true "Requisición ID"
// @Param conversion body services.ConvertirRequest true "Conversion details"
// @Success 201 {object} models.OrdenCompra
// @Router /requisiciones/{id}/convertir [post]
func (h *RequisicionHandler) ConvertirRequisicion(c *fiber.Ctx) error {
	var req services.ConvertirRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	orden, err := h.requisicionService.Convertir(auth.Actor(c), c.Params("id"), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(orden)
}

// DeleteRequisicion godoc
// @Summary Delete requisición
// @Tags Requisiciones
// @Produce json
// @Param id path string true "Requisición ID"
// @Success 200 {object} map[string]interface{}
// @Router /requisiciones/{id} [delete]
func (h *RequisicionHandler) DeleteRequisicion(c *fiber.Ctx) error {
	if err := h.requisicionService.Delete(auth.Actor(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Requisición eliminada"})
}
