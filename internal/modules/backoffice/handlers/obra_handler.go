package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obratec/obras-backoffice-be/internal/core/auth"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/services"
)

type ObraHandler struct {
	obraService *services.ObraService
}

func NewObraHandler(obraService *services.ObraService) *ObraHandler {
	return &ObraHandler{
		obraService: obraService,
	}
}

// CreateObra godoc
// @Summary Create obra
// @Description Register a new construction project
// @Tags Obras
// @Accept json
// @Produce json
// @Param obra body services.CreateObraRequest true "Obra to create"
// @Success 201 {object} models.Obra
// @Router /obras [post]
func (h *ObraHandler) CreateObra(c *fiber.Ctx) error {
	var req services.CreateObraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	obra, err := h.obraService.Create(auth.Actor(c), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(obra)
}

// ListObras godoc
// @Summary List obras
// @Description List construction projects, optionally filtered by estado
// @Tags Obras
// @Produce json
// @Param estado query string false "Estado filter"
// @Param limit query int false "Max results"
// @Success 200 {array} models.Obra
// @Router /obras [get]
func (h *ObraHandler) ListObras(c *fiber.Ctx) error {
	obras, err := h.obraService.List(c.Query("estado"), queryLimit(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(obras)
}

// GetObra godoc
// @Summary Get obra
// @Tags Obras
// @Produce json
// @Param id path string true "Obra ID"
// @Success 200 {object} models.Obra
// @Router /obras/{id} [get]
func (h *ObraHandler) GetObra(c *fiber.Ctx) error {
	obra, err := h.obraService.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(obra)
}

// UpdateObra godoc
// @Summary Update obra
// @Tags Obras
// @Accept json
// @Produce json
// @Param id path string true "Obra ID"
// @Param obra body services.CreateObraRequest true "Obra data"
// @Success 200 {object} models.Obra
// @Router /obras/{id} [put]
func (h *ObraHandler) UpdateObra(c *fiber.Ctx) error {
	var req services.CreateObraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	obra, err := h.obraService.Update(auth.Actor(c), c.Params("id"), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(obra)
}

// CambiarEstadoObra godoc
// @Summary Change obra estado
// @Tags Obras
// @Accept json
// @Produce json
// @Param id path string true "Obra ID"
// @Success 200 {object} models.Obra
// @Router /obras/{id}/estado [patch]
func (h *ObraHandler) CambiarEstadoObra(c *fiber.Ctx) error {
	var req struct {
		Estado string `json:"estado"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	obra, err := h.obraService.CambiarEstado(auth.Actor(c), c.Params("id"), req.Estado)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(obra)
}

// DeleteObra godoc
// @Summary Delete obra
// @Tags Obras
// @Produce json
// @Param id path string true "Obra ID"
// @Success 200 {object} map[string]interface{}
// @Router /obras/{id} [delete]
func (h *ObraHandler) DeleteObra(c *fiber.Ctx) error {
	if err := h.obraService.Delete(auth.Actor(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Obra eliminada"})
}
