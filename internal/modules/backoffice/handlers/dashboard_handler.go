package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	auditor          audit.Recorder
}

func NewDashboardHandler(dashboardService *services.DashboardService, auditor audit.Recorder) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		auditor:          auditor,
	}
}

// Resumen godoc
// @Summary Dashboard summary
// @Description Aggregate counters and balances for the back-office home screen
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.DashboardResumen
// @Router /dashboard [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	resumen, err := h.dashboardService.Resumen()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resumen)
}

// AuditLog godoc
// @Summary Audit trail
// @Description List audit entries, optionally scoped to one entity
// @Tags Dashboard
// @Produce json
// @Param entidad query string false "Entity type"
// @Param entidad_id query string false "Entity ID"
// @Param limit query int false "Max results"
// @Success 200 {array} audit.Entry
// @Router /audit-log [get]
func (h *DashboardHandler) AuditLog(c *fiber.Ctx) error {
	entries, err := h.auditor.List(c.Query("entidad"), c.Query("entidad_id"), queryLimit(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(entries)
}
