package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/application/usecase"
)

// PackageHandler handles design package endpoints, company-scoped.
type PackageHandler struct {
	uc *usecase.PackageUseCase
}

// NewPackageHandler builds the handler.
func NewPackageHandler(uc *usecase.PackageUseCase) *PackageHandler {
	return &PackageHandler{uc: uc}
}

// Create registers a package.
// POST /api/packages
func (h *PackageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePackageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err, "package not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns the company's packages.
// GET /api/packages
func (h *PackageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// GetByID returns one package.
// GET /api/packages/:id
func (h *PackageHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err, "package not found")
	}
	return c.JSON(out)
}

// Update rewrites a package.
// PUT /api/packages/:id
func (h *PackageHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdatePackageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err, "package not found")
	}
	return c.JSON(out)
}

// Delete removes a package.
// DELETE /api/packages/:id
func (h *PackageHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err, "package not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
