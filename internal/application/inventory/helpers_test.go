package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memstore"
)

const (
	ownerID = "00000000-0000-0000-0000-000000000001"
	otherID = "00000000-0000-0000-0000-000000000002"
)

func seedItem(t *testing.T, db *memstore.DB, id string, qty int) *entity.InventoryItem {
	t.Helper()
	now := time.Now()
	item := &entity.InventoryItem{
		ID: id, OwnerID: ownerID, Name: "Tornillo", Quantity: qty,
		Price: decimal.NewFromInt(3), CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.Items().Create(context.Background(), item))
	return item
}

func seedStore(t *testing.T, db *memstore.DB, id string) *entity.Store {
	t.Helper()
	now := time.Now()
	store := &entity.Store{ID: id, OwnerID: ownerID, Name: "Centro", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Stores().Create(context.Background(), store))
	return store
}

// conflictRunner devuelve domain.ErrConflict en los primeros `fail` intentos.
type conflictRunner struct {
	inner inventory.TxRunner
	fail  int
	calls int
}

func (r *conflictRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	r.calls++
	if r.calls <= r.fail {
		return domain.ErrConflict
	}
	return r.inner.Run(ctx, fn)
}

// recordingRunner registra el orden de las llamadas al repositorio de stock por tienda.
type recordingRunner struct {
	inner inventory.TxRunner
	calls []string
}

func (r *recordingRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	return r.inner.Run(ctx, func(repos inventory.TxRepos) error {
		repos.StoreStock = &recordingStock{StoreInventoryRepository: repos.StoreStock, calls: &r.calls}
		return fn(repos)
	})
}

type recordingStock struct {
	repository.StoreInventoryRepository
	calls *[]string
}

func (s *recordingStock) CreateIfAbsent(ctx context.Context, si *entity.StoreInventory) error {
	*s.calls = append(*s.calls, "CreateIfAbsent")
	return s.StoreInventoryRepository.CreateIfAbsent(ctx, si)
}

func (s *recordingStock) GetForUpdate(ctx context.Context, storeID, itemID string) (*entity.StoreInventory, error) {
	*s.calls = append(*s.calls, "GetForUpdate")
	return s.StoreInventoryRepository.GetForUpdate(ctx, storeID, itemID)
}

func (s *recordingStock) Save(ctx context.Context, si *entity.StoreInventory) error {
	*s.calls = append(*s.calls, "Save")
	return s.StoreInventoryRepository.Save(ctx, si)
}
