package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vishvakarma/studiodesk-api/internal/application/billing"
	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
)

// BillHandler handles tax invoice endpoints, company-scoped.
type BillHandler struct {
	uc *billing.BillUseCase
}

// NewBillHandler builds the handler.
func NewBillHandler(uc *billing.BillUseCase) *BillHandler {
	return &BillHandler{uc: uc}
}

// Create converts a quotation into a bill, snapshotting its tax breakdown.
// POST /api/bills
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), GetCompanyCode(c), in)
	if err != nil {
		return respondError(c, err, "quotation not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns the company's bills, newest first.
// GET /api/bills
func (h *BillHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Recent returns the latest bills for the dashboard.
// GET /api/bills/recent
func (h *BillHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.Context(), GetCompanyID(c), recentLimit)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// GetByID returns one bill.
// GET /api/bills/:id
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err, "bill not found")
	}
	return c.JSON(out)
}

// Update rewrites the mutable bill fields (date, notes).
// PUT /api/bills/:id
func (h *BillHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err, "bill not found")
	}
	return c.JSON(out)
}

// Delete removes a bill and reverts its quotation to confirmed.
// DELETE /api/bills/:id
func (h *BillHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err, "bill not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
