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

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/production"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/scrap"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/usecase"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/infrastructure/postgres"
	httpRouter "github.com/CoderMasters4/Dhruval-Erp-sub009/internal/interfaces/http"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/pkg/config"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	scrapRepo := postgres.NewScrapRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	stageEntryRepo := postgres.NewStageEntryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	inventoryUC := usecase.NewInventoryItemUseCase(itemRepo, movementRepo)
	scrapSvc := scrap.NewService(txRunner, scrapRepo, movementRepo, companyRepo, log)
	entryUC := production.NewEntryUseCase(stageEntryRepo)
	lotResolver := production.NewLotResolver(stageEntryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dhruval ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		WarehouseUC: warehouseUC,
		InventoryUC: inventoryUC,
		ScrapSvc:    scrapSvc,
		EntryUC:     entryUC,
		LotResolver: lotResolver,
		JWTSecret:   cfg.JWT.Secret,
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
