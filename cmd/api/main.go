package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/auth"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/importer"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/inventory"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/usecase"
	"github.com/pr-poehali-dev/stock-management-excel/internal/infrastructure/pdf"
	"github.com/pr-poehali-dev/stock-management-excel/internal/infrastructure/postgres"
	httpRouter "github.com/pr-poehali-dev/stock-management-excel/internal/interfaces/http"
	"github.com/pr-poehali-dev/stock-management-excel/pkg/config"
	"github.com/pr-poehali-dev/stock-management-excel/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	writeoffRepo := postgres.NewWriteoffActRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledger := inventory.NewLedger(txRunner, productRepo, movementRepo, log)
	reconciler := importer.NewReconciler(productRepo, txRunner, cfg.Import.Transactional, log)

	productUC := usecase.NewProductUseCase(productRepo)
	writeoffUC := usecase.NewWriteoffActUseCase(writeoffRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	actPDF := pdf.NewActRenderer()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.CORS())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Management API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		WriteoffUC: writeoffUC,
		UserUC:     userUC,
		AuthUC:     authUC,
		Ledger:     ledger,
		Reconciler: reconciler,
		ActPDF:     actPDF,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
