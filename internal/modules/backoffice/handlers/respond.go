package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/obratec/obras-backoffice-be/internal/core/reconcile"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/services"
	"gorm.io/gorm"
)

// handleError maps service errors to HTTP responses. Validation problems
// come back as 422 with a field → message map, reconciliation conflicts as
// 409, missing records as 404.
func handleError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "datos inválidos",
			"fields": verr.Fields,
		})
	}

	var inconsistency *reconcile.InconsistencyError
	if errors.As(err, &inconsistency) {
		log.Printf("❌ Reconciliation inconsistency: %v", inconsistency)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": inconsistency.Error()})
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "recurso no encontrado"})
	case errors.Is(err, reconcile.ErrAlreadyMatched),
		errors.Is(err, reconcile.ErrNotMatched):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, reconcile.ErrEmptyBatch):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("❌ Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func queryLimit(c *fiber.Ctx) int {
	return c.QueryInt("limit", 0)
}
