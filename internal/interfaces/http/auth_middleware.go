package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/pkg/jwt"
)

// Locals keys for the authenticated identity in Fiber.
const (
	LocalUserID      = "user_id"
	LocalCompanyID   = "company_id"
	LocalCompanyCode = "company_code"
)

// AuthMiddleware validates the Bearer token and stores the user and company
// claims in c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalCompanyID, claims.CompanyID)
		c.Locals(LocalCompanyCode, claims.CompanyCode)
		return c.Next()
	}
}

// RequireCompany rejects tokens that have not selected a company yet.
// Company-scoped routes sit behind this after AuthMiddleware.
func RequireCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetCompanyID(c) == 0 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "COMPANY_REQUIRED", Message: "select a company first"})
		}
		return c.Next()
	}
}

// GetUserID returns the user ID from the context (after auth middleware).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetCompanyID returns the active company ID, zero before company selection.
func GetCompanyID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalCompanyID).(int64)
	return v
}

// GetCompanyCode returns the active company code, "" before selection.
func GetCompanyCode(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalCompanyCode).(string)
	return v
}
