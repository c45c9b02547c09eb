package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vishvakarma/studiodesk-api/internal/application/auth"
	"github.com/vishvakarma/studiodesk-api/internal/application/billing"
	"github.com/vishvakarma/studiodesk-api/internal/application/quoting"
	"github.com/vishvakarma/studiodesk-api/internal/application/usecase"
)

// RouterDeps wires the use cases into the router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CompanyUC *usecase.CompanyUseCase
	ClientUC  *usecase.ClientUseCase
	PackageUC *usecase.PackageUseCase
	QuotingUC *quoting.QuotingUseCase
	BillUC    *billing.BillUseCase
	ReceiptUC *billing.ReceiptUseCase
	PDFUC     *billing.PDFUseCase
	ShareUC   *billing.ShareUseCase
	ReportUC  *usecase.ReportUseCase
	JWTSecret string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login is public, the rest of auth needs a token but no company.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/select-company", AuthMiddleware(deps.JWTSecret), authHandler.SelectCompany)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Companies: listing and creation happen before a company is selected.
	companies := api.Group("/companies", AuthMiddleware(deps.JWTSecret))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)

	// Everything below requires a company-scoped token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireCompany())

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	packages := protected.Group("/packages")
	packageHandler := NewPackageHandler(deps.PackageUC)
	packages.Post("/", packageHandler.Create)
	packages.Get("/", packageHandler.List)
	packages.Get("/:id", packageHandler.GetByID)
	packages.Put("/:id", packageHandler.Update)
	packages.Delete("/:id", packageHandler.Delete)

	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotingUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Post("/calculate", quotationHandler.Calculate)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/recent", quotationHandler.Recent)
	quotations.Get("/defaults/sqft", quotationHandler.SqftDefaults)
	quotations.Put("/defaults/sqft", quotationHandler.SaveSqftDefaults)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Delete("/:id", quotationHandler.Delete)

	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC)
	bills.Post("/", billHandler.Create)
	bills.Get("/", billHandler.List)
	bills.Get("/recent", billHandler.Recent)
	bills.Get("/:id", billHandler.GetByID)
	bills.Put("/:id", billHandler.Update)
	bills.Delete("/:id", billHandler.Delete)

	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/recent", receiptHandler.Recent)
	receipts.Get("/quotation/:id", receiptHandler.ListByQuotation)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Put("/:id", receiptHandler.Update)
	receipts.Delete("/:id", receiptHandler.Delete)

	pdf := protected.Group("/pdf")
	pdfHandler := NewPDFHandler(deps.PDFUC, deps.ShareUC)
	pdf.Get("/quotation/:id", pdfHandler.Quotation)
	pdf.Get("/bill/:id", pdfHandler.Bill)
	pdf.Get("/receipt/:id", pdfHandler.Receipt)
	pdf.Get("/whatsapp/:type/:id", pdfHandler.Share)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/summary", reportHandler.Summary)
}
