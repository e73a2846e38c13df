package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/production"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/scrap"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/usecase"
)

// RouterDeps carries the wired use cases into the router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	InventoryUC *usecase.InventoryItemUseCase
	ScrapSvc    *scrap.Service
	EntryUC     *production.EntryUseCase
	LotResolver *production.LotResolver
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (superadmin only)
	companies := protected.Group("/companies", RequireRole("superadmin"))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.Get)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.Get)

	// Inventory items and their movement audit trail
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Post("/items", inventoryHandler.Create)
	inventory.Get("/items", inventoryHandler.List)
	inventory.Get("/items/:id", inventoryHandler.Get)
	inventory.Get("/items/:id/movements", inventoryHandler.Movements)

	// Scrap ledger
	scrapGroup := protected.Group("/scrap")
	scrapHandler := NewScrapHandler(deps.ScrapSvc)
	scrapGroup.Post("/inventory/:inventoryItemId/move", scrapHandler.MoveToScrap)
	scrapGroup.Get("/", scrapHandler.List)
	scrapGroup.Get("/summary", scrapHandler.Summary)
	scrapGroup.Get("/:id", scrapHandler.Get)
	scrapGroup.Put("/:id", scrapHandler.Update)
	scrapGroup.Post("/:id/dispose", scrapHandler.Dispose)
	scrapGroup.Delete("/:id", scrapHandler.Cancel)

	// Production stages and lot carry-forward
	prod := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.EntryUC, deps.LotResolver)
	prod.Post("/entries", productionHandler.CreateEntry)
	prod.Get("/entries", productionHandler.ListEntries)
	prod.Get("/entries/:id", productionHandler.GetEntry)
	prod.Put("/entries/:id/output", productionHandler.RecordOutput)
	prod.Post("/entries/:id/complete", productionHandler.QuickComplete)
	prod.Get("/lot/:lotNumber/details", productionHandler.LotDetails)
	prod.Get("/lot/:lotNumber/input-meter/:targetModule", productionHandler.AvailableInputMeter)
}
