package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vishvakarma/studiodesk-api/internal/application/auth"
	"github.com/vishvakarma/studiodesk-api/internal/application/billing"
	"github.com/vishvakarma/studiodesk-api/internal/application/quoting"
	"github.com/vishvakarma/studiodesk-api/internal/application/usecase"
	infrapdf "github.com/vishvakarma/studiodesk-api/internal/infrastructure/pdf"
	"github.com/vishvakarma/studiodesk-api/internal/infrastructure/postgres"
	httpRouter "github.com/vishvakarma/studiodesk-api/internal/interfaces/http"
	"github.com/vishvakarma/studiodesk-api/pkg/config"
	"github.com/vishvakarma/studiodesk-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	sqftDefaultRepo := postgres.NewSqftDefaultRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	packageUC := usecase.NewPackageUseCase(packageRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)

	quotingUC := quoting.NewQuotingUseCase(
		txRunner, quotationRepo, clientRepo, packageRepo, companyRepo, billRepo, receiptRepo, sqftDefaultRepo,
	)
	billUC := billing.NewBillUseCase(txRunner, billRepo, quotationRepo, receiptRepo)
	receiptUC := billing.NewReceiptUseCase(txRunner, receiptRepo, quotationRepo)

	// PDF: planner decides the layout, Maroto turns plans into bytes.
	renderer := infrapdf.NewMarotoRenderer()
	pdfUC := billing.NewPDFUseCase(
		quotationRepo, billRepo, receiptRepo, companyRepo, clientRepo, renderer,
	)
	shareUC := billing.NewShareUseCase(
		quotationRepo, billRepo, receiptRepo, clientRepo, companyRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CompanyUC: companyUC,
		ClientUC:  clientUC,
		PackageUC: packageUC,
		QuotingUC: quotingUC,
		BillUC:    billUC,
		ReceiptUC: receiptUC,
		PDFUC:     pdfUC,
		ShareUC:   shareUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
