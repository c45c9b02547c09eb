package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vishvakarma/studiodesk-api/internal/application/auth"
	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
)

// AuthHandler handles login, company selection and the current session.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login authenticates a user. The returned token carries no company claims
// until one is selected.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err, "user not found")
	}
	return c.JSON(out)
}

// SelectCompany re-issues the token scoped to one company.
// POST /api/auth/select-company
func (h *AuthHandler) SelectCompany(c *fiber.Ctx) error {
	var in dto.SelectCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SelectCompany(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err, "company not found")
	}
	return c.JSON(out)
}

// Me returns the authenticated user and the active company, if selected.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUserID(c), GetCompanyID(c))
	if err != nil {
		return respondError(c, err, "user not found")
	}
	return c.JSON(out)
}
