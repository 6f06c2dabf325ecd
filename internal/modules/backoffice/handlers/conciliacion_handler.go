package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obratec/obras-backoffice-be/internal/core/auth"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/services"
)

type ConciliacionHandler struct {
	conciliacionService *services.ConciliacionService
}

func NewConciliacionHandler(conciliacionService *services.ConciliacionService) *ConciliacionHandler {
	return &ConciliacionHandler{
		conciliacionService: conciliacionService,
	}
}

// ImportCSV godoc
// @Summary Import bank statement
// @Description Upload a CSV bank statement; valid lines become unmatched transactions
// @Tags Conciliacion
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file (fecha, descripción, monto, referencia)"
// @Success 200 {object} services.ImportResult
// @Router /bank-transactions/import [post]
func (h *ConciliacionHandler) ImportCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "archivo CSV requerido (campo file)"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "no se pudo leer el archivo"})
	}
	defer file.Close()

	result, err := h.conciliacionService.ImportCSV(auth.Actor(c), file)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(result)
}

// ListTransactions godoc
// @Summary List bank transactions
// @Tags Conciliacion
// @Produce json
// @Param matched query bool false "Filter by matched flag"
// @Param limit query int false "Max results"
// @Success 200 {array} models.BankTransaction
// @Router /bank-transactions [get]
func (h *ConciliacionHandler) ListTransactions(c *fiber.Ctx) error {
	var matched *bool
	if c.Query("matched") != "" {
		value := c.QueryBool("matched", false)
		matched = &value
	}

	transactions, err := h.conciliacionService.List(matched, queryLimit(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(transactions)
}

// GetTransaction godoc
// @Summary Get bank transaction
// @Tags Conciliacion
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.BankTransaction
// @Router /bank-transactions/{id} [get]
func (h *ConciliacionHandler) GetTransaction(c *fiber.Ctx) error {
	transaction, err := h.conciliacionService.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(transaction)
}

// AutoMatch godoc
// @Summary Run folio auto-match
// @Description Match unmatched transactions whose description contains an order folio
// @Tags Conciliacion
// @Produce json
// @Success 200 {object} services.AutoMatchResult
// @Router /bank-transactions/auto-match [post]
func (h *ConciliacionHandler) AutoMatch(c *fiber.Ctx) error {
	result, err := h.conciliacionService.AutoMatch(auth.Actor(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(result)
}

// ManualMatch godoc
// @Summary Manually match a transaction
// @Description Pair a transaction with a purchase order and generate the payment
// @Tags Conciliacion
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Pago
// @Router /bank-transactions/{id}/match [post]
func (h *ConciliacionHandler) ManualMatch(c *fiber.Ctx) error {
	var req struct {
		OrdenCompraID string `json:"orden_compra_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	pago, err := h.conciliacionService.ManualMatch(auth.Actor(c), c.Params("id"), req.OrdenCompraID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(pago)
}

// Unmatch godoc
// @Summary Reverse a match
// @Description Cancel the generated payment and return the transaction to the unmatched pool
// @Tags Conciliacion
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.BankTransaction
// @Router /bank-transactions/{id}/unmatch [post]
func (h *ConciliacionHandler) Unmatch(c *fiber.Ctx) error {
	transaction, err := h.conciliacionService.Unmatch(auth.Actor(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(transaction)
}
