package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vishvakarma/studiodesk-api/internal/application/billing"
	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
)

// ReceiptHandler handles payment receipt endpoints, company-scoped.
type ReceiptHandler struct {
	uc *billing.ReceiptUseCase
}

// NewReceiptHandler builds the handler.
func NewReceiptHandler(uc *billing.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create records a payment against a quotation and reconciles its bill.
// POST /api/receipts
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), GetCompanyCode(c), in)
	if err != nil {
		return respondError(c, err, "quotation not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns the company's receipts, newest first.
// GET /api/receipts
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Recent returns the latest receipts for the dashboard.
// GET /api/receipts/recent
func (h *ReceiptHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.Context(), GetCompanyID(c), recentLimit)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// ListByQuotation returns the payments recorded against one quotation.
// GET /api/receipts/quotation/:id
func (h *ReceiptHandler) ListByQuotation(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.ListByQuotation(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err, "quotation not found")
	}
	return c.JSON(out)
}

// GetByID returns one receipt.
// GET /api/receipts/:id
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err, "receipt not found")
	}
	return c.JSON(out)
}

// Update rewrites a receipt and re-reconciles the quotation's bill.
// PUT /api/receipts/:id
func (h *ReceiptHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err, "receipt not found")
	}
	return c.JSON(out)
}

// Delete removes a receipt and re-reconciles the quotation's bill.
// DELETE /api/receipts/:id
func (h *ReceiptHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err, "receipt not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
