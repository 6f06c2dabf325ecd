package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obratec/obras-backoffice-be/internal/core/auth"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/services"
)

type ProveedorHandler struct {
	proveedorService *services.ProveedorService
}

func NewProveedorHandler(proveedorService *services.ProveedorService) *ProveedorHandler {
	return &ProveedorHandler{
		proveedorService: proveedorService,
	}
}

// CreateProveedor godoc
// @Summary Create proveedor
// @Description Register a new supplier
// @Tags Proveedores
// @Accept json
// @Produce json
// @Param proveedor body services.CreateProveedorRequest true "Proveedor to create"
// @Success 201 {object} models.Proveedor
// @Router /proveedores [post]
func (h *ProveedorHandler) CreateProveedor(c *fiber.Ctx) error {
	var req services.CreateProveedorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	proveedor, err := h.proveedorService.Create(auth.Actor(c), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(proveedor)
}

// ListProveedores godoc
// @Summary List proveedores
// @Tags Proveedores
// @Produce json
// @Param activos query bool false "Only active suppliers"
// @Param limit query int false "Max results"
// @Success 200 {array} models.Proveedor
// @Router /proveedores [get]
func (h *ProveedorHandler) ListProveedores(c *fiber.Ctx) error {
	proveedores, err := h.proveedorService.List(c.QueryBool("activos", false), queryLimit(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(proveedores)
}

// GetProveedor godoc
// @Summary Get proveedor
// @Tags Proveedores
// @Produce json
// @Param id path string true "Proveedor ID"
// @Success 200 {object} models.Proveedor
// @Router /proveedores/{id} [get]
func (h *ProveedorHandler) GetProveedor(c *fiber.Ctx) error {
	proveedor, err := h.proveedorService.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(proveedor)
}

// UpdateProveedor godoc
// @Summary Update proveedor
// @Tags Proveedores
// @Accept json
// @Produce json
// @Param id path string true "Proveedor ID"
// @Param proveedor body services.CreateProveedorRequest true "Proveedor data"
// @Success 200 {object} models.Proveedor
// @Router /proveedores/{id} [put]
func (h *ProveedorHandler) UpdateProveedor(c *fiber.Ctx) error {
	var req services.CreateProveedorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	proveedor, err := h.proveedorService.Update(auth.Actor(c), c.Params("id"), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(proveedor)
}

// DesactivarProveedor godoc
// @Summary Deactivate proveedor
// @Description Soft-disable a supplier without breaking historic orders
// @Tags Proveedores
// @Produce json
// @Param id path string true "Proveedor ID"
// @Success 200 {object} models.Proveedor
// @Router /proveedores/{id}/desactivar [patch]
func (h *ProveedorHandler) DesactivarProveedor(c *fiber.Ctx) error {
	proveedor, err := h.proveedorService.Desactivar(auth.Actor(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(proveedor)
}
