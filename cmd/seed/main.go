// seed carga datos de demostración en PostgreSQL: un usuario, dos tiendas, artículos con
// cantidad inicial (registrada en el libro) y stock por tienda (que dispara alertas).
// Imprime un token JWT del usuario demo para probar la API.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/jwt"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

type seedItem struct {
	name     string
	quantity int
	price    string
	stock    []int // cantidad por tienda, en el orden de seedStores
}

var seedStores = []dto.CreateStoreRequest{
	{Name: "Tienda Centro", Address: "Cra 7 # 12-30", ContactNumber: "6015550101", Email: "centro@example.com"},
	{Name: "Tienda Norte", Address: "Cl 140 # 19-05", ContactNumber: "6015550102", Email: "norte@example.com"},
}

var seedItems = []seedItem{
	{name: "Tornillo 1/4", quantity: 500, price: "0.35", stock: []int{120, 8}},
	{name: "Martillo", quantity: 40, price: "18.90", stock: []int{15, 25}},
	{name: "Cinta métrica", quantity: 60, price: "7.50", stock: []int{30, 5}},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	if _, err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}

	userID := uuid.New().String()
	if err := postgres.NewUserRepository(pool).EnsureExists(ctx, userID, "demo"); err != nil {
		return err
	}

	txRunner := postgres.NewTxRunner(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	itemUC := usecase.NewItemUseCase(txRunner, postgres.NewInventoryItemRepository(pool))
	storeUC := usecase.NewStoreUseCase(storeRepo)
	stockUC := inventory.NewStoreStockUseCase(txRunner, inventory.NewAlertEngine(log), postgres.NewStoreInventoryRepository(pool), storeRepo)

	storeIDs := make([]string, 0, len(seedStores))
	for _, s := range seedStores {
		out, err := storeUC.Create(ctx, userID, s)
		if err != nil {
			return fmt.Errorf("crear tienda %s: %w", s.Name, err)
		}
		storeIDs = append(storeIDs, out.ID)
	}

	alerts := 0
	for _, it := range seedItems {
		item, err := itemUC.Create(ctx, userID, dto.CreateItemRequest{
			Name:     it.name,
			Quantity: it.quantity,
			Price:    decimal.RequireFromString(it.price),
		})
		if err != nil {
			return fmt.Errorf("crear artículo %s: %w", it.name, err)
		}
		for i, qty := range it.stock {
			q := qty
			res, err := stockUC.SetStoreStock(ctx, inventory.SetStoreStockInput{
				ActorID: userID, StoreID: storeIDs[i], ItemID: item.ID, Quantity: &q,
			})
			if err != nil {
				return fmt.Errorf("stock %s en tienda %d: %w", it.name, i, err)
			}
			alerts += len(res.AlertsCreated)
		}
	}

	token, err := jwt.Generate(cfg.JWT.Secret, userID, "demo", cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		return err
	}
	log.Info().
		Str("user_id", userID).
		Int("stores", len(storeIDs)).
		Int("items", len(seedItems)).
		Int("alerts", alerts).
		Msg("datos de demostración cargados")
	fmt.Println("Authorization: Bearer " + token)
	return nil
}
