package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/application/quoting"
)

// recentLimit caps the dashboard "recent documents" lists.
const recentLimit = 5

// QuotationHandler handles quotation endpoints, company-scoped.
type QuotationHandler struct {
	uc *quoting.QuotingUseCase
}

// NewQuotationHandler builds the handler.
func NewQuotationHandler(uc *quoting.QuotingUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Create prices and persists a quotation, allocating its document number.
// POST /api/quotations
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), GetCompanyCode(c), in)
	if err != nil {
		return respondError(c, err, "client or package not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Calculate prices a quotation without persisting anything.
// POST /api/quotations/calculate
func (h *QuotationHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Calculate(c.Context(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// SqftDefaults returns the company's item templates for area-rate quotations.
// GET /api/quotations/defaults/sqft
func (h *QuotationHandler) SqftDefaults(c *fiber.Ctx) error {
	out, err := h.uc.SqftDefaults(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// SaveSqftDefaults replaces the company's template set.
// PUT /api/quotations/defaults/sqft
func (h *QuotationHandler) SaveSqftDefaults(c *fiber.Ctx) error {
	var in dto.SaveSqftDefaultsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.SaveSqftDefaults(c.Context(), GetCompanyID(c), in); err != nil {
		return respondError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List returns the company's quotations, newest first.
// GET /api/quotations
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Recent returns the latest quotations for the dashboard.
// GET /api/quotations/recent
func (h *QuotationHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.Context(), GetCompanyID(c), recentLimit)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// GetByID returns one quotation with its item lines and pricing breakdown.
// GET /api/quotations/:id
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err, "quotation not found")
	}
	return c.JSON(out)
}

// Update reprices and rewrites a quotation. The number never changes.
// PUT /api/quotations/:id
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err, "quotation not found")
	}
	return c.JSON(out)
}

// Delete removes a quotation unless it has a bill or receipts.
// DELETE /api/quotations/:id
func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err, "quotation not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
