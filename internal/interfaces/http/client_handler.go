package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/application/usecase"
)

// ClientHandler handles client (end customer) endpoints, company-scoped.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler builds the handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create registers a client under the active company.
// POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err, "client not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns the company's clients.
// GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// GetByID returns one client.
// GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err, "client not found")
	}
	return c.JSON(out)
}

// Update rewrites a client.
// PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err, "client not found")
	}
	return c.JSON(out)
}

// Delete removes a client.
// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err, "client not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
