package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// FiberConfig configuración de Fiber del servidor (y de las pruebas de la API).
// Immutable copia Params, Query y cabeceras: el adaptador en memoria guarda esos valores
// como claves más allá de la petición y Fiber reutiliza sus buffers.
func FiberConfig(appName string) fiber.Config {
	return fiber.Config{
		AppName:      appName,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	}
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	StoreUC     *usecase.StoreUseCase
	AdjustStock *inventory.AdjustStockUseCase
	Ledger      *inventory.LedgerUseCase
	StoreStock  *inventory.StoreStockUseCase
	Alerts      *inventory.AlertUseCase
	StockReport *inventory.StockReportUseCase
	Users       repository.UserRepository
	Idempotency IdempotencyStore // nil = sin idempotencia
	Logger      *logger.Logger
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret), EnsureUser(deps.Users))

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.Ledger)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/:id/adjust-stock", Idempotency(deps.Idempotency, deps.Logger), inventoryHandler.AdjustStock)
	items.Post("/:id/correct-stock", inventoryHandler.CorrectStock)

	// Ledger
	api.Get("/inventory-changes", inventoryHandler.ListChanges)

	// Stores + stock por tienda
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.StoreStock)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Get("/:id/inventory", storeHandler.ListInventory)
	stores.Put("/:id/inventory/:item_id", storeHandler.SetInventory)
	stores.Post("/:id/inventory/:item_id/adjust", storeHandler.AdjustInventory)

	// Alerts
	alerts := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.Alerts)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/:id/resolve", alertHandler.Resolve)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.StockReport)
	reports.Get("/stock", reportHandler.Stock)
	reports.Get("/stock/pdf", reportHandler.StockPDF)
}
