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
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memstore"
	infrapdf "github.com/jhoicas/inventario-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-ledger/internal/interfaces/http"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// storage agrupa el TxRunner y los repositorios de lectura del driver elegido.
type storage struct {
	txRunner inventory.TxRunner
	items    repository.InventoryItemRepository
	changes  repository.InventoryChangeRepository
	stores   repository.StoreRepository
	stock    repository.StoreInventoryRepository
	alerts   repository.InventoryAlertRepository
	reports  repository.ReportRepository
	users    repository.UserRepository
	close    func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn().Msg("STORAGE_DRIVER=memory: los datos se pierden al reiniciar")
		db := memstore.New()
		return &storage{
			txRunner: db,
			items:    db.Items(),
			changes:  db.Changes(),
			stores:   db.Stores(),
			stock:    db.StoreStock(),
			alerts:   db.Alerts(),
			reports:  db.Reports(),
			users:    db.Users(),
			close:    func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.Migrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
	}
	return &storage{
		txRunner: postgres.NewTxRunner(pool),
		items:    postgres.NewInventoryItemRepository(pool),
		changes:  postgres.NewInventoryChangeRepository(pool),
		stores:   postgres.NewStoreRepository(pool),
		stock:    postgres.NewStoreInventoryRepository(pool),
		alerts:   postgres.NewInventoryAlertRepository(pool),
		reports:  postgres.NewReportRepository(pool),
		users:    postgres.NewUserRepository(pool),
		close:    pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	// Redis opcional: claves de idempotencia para adjust-stock.
	var idempotency httpRouter.IdempotencyStore
	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		idempotency = cache.NewIdempotencyStore(client, cfg.Redis.IdempotencyTTL)
	}

	alertEngine := inventory.NewAlertEngine(log)
	itemUC := usecase.NewItemUseCase(store.txRunner, store.items)
	storeUC := usecase.NewStoreUseCase(store.stores)
	adjustStockUC := inventory.NewAdjustStockUseCase(store.txRunner, log)
	ledgerUC := inventory.NewLedgerUseCase(store.changes)
	storeStockUC := inventory.NewStoreStockUseCase(store.txRunner, alertEngine, store.stock, store.stores)
	alertUC := inventory.NewAlertUseCase(store.txRunner, store.alerts)
	stockReportUC := inventory.NewStockReportUseCase(store.reports, store.stores, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))

	app := fiber.New(httpRouter.FiberConfig(cfg.App.Name))
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Inventario Ledger API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		StoreUC:     storeUC,
		AdjustStock: adjustStockUC,
		Ledger:      ledgerUC,
		StoreStock:  storeStockUC,
		Alerts:      alertUC,
		StockReport: stockReportUC,
		Users:       store.users,
		Idempotency: idempotency,
		Logger:      log,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
