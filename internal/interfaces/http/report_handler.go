package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vishvakarma/studiodesk-api/internal/application/usecase"
)

// ReportHandler handles the dashboard and the summary report.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard returns the landing-page aggregates for the active company.
// GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Summary aggregates quotations, billing and collections over an optional
// date range (?from=YYYY-MM-DD&to=YYYY-MM-DD).
// GET /api/reports/summary
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetCompanyID(c), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
