package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memstore"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

func intPtr(v int) *int { return &v }

func newStoreStockUC(db *memstore.DB) *inventory.StoreStockUseCase {
	return inventory.NewStoreStockUseCase(db, inventory.NewAlertEngine(logger.Nop()), db.StoreStock(), db.Stores())
}

func TestSetStoreStock_ScenarioC_BothAlerts(t *testing.T) {
	db := memstore.New()
	seedItem(t, db, "item-1", 0)
	seedStore(t, db, "store-1")

	res, err := newStoreStockUC(db).SetStoreStock(context.Background(), inventory.SetStoreStockInput{
		ActorID: ownerID, StoreID: "store-1", ItemID: "item-1",
		Quantity: intPtr(8), LowStockThreshold: intPtr(10), ReorderPoint: intPtr(20),
	})
	require.NoError(t, err)
	require.Len(t, res.AlertsCreated, 2)
	assert.Equal(t, entity.AlertTypeLowStock, res.AlertsCreated[0].AlertType)
	assert.Contains(t, res.AlertsCreated[0].Message, "Tornillo")
	assert.Contains(t, res.AlertsCreated[0].Message, "Centro")
	assert.Contains(t, res.AlertsCreated[0].Message, "8")
	assert.Equal(t, entity.AlertTypeReorder, res.AlertsCreated[1].AlertType)
	assert.Contains(t, res.AlertsCreated[1].Message, "50")
}

func TestSetStoreStock_ScenarioE_NoAlerts(t *testing.T) {
	db := memstore.New()
	seedItem(t, db, "item-1", 0)
	seedStore(t, db, "store-1")

	res, err := newStoreStockUC(db).SetStoreStock(context.Background(), inventory.SetStoreStockInput{
		ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", Quantity: intPtr(25),
	})
	require.NoError(t, err)
	assert.Empty(t, res.AlertsCreated)
	assert.Equal(t, entity.DefaultLowStockThreshold, res.Stock.LowStockThreshold)
}

func TestStoreStock_AlertDedupAndNoAutoResolve(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	seedItem(t, db, "item-1", 0)
	seedStore(t, db, "store-1")
	uc := newStoreStockUC(db)

	in := inventory.SetStoreStockInput{ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", Quantity: intPtr(5)}
	_, err := uc.SetStoreStock(ctx, in)
	require.NoError(t, err)
	res, err := uc.SetStoreStock(ctx, in)
	require.NoError(t, err)
	assert.Empty(t, res.AlertsCreated)

	// Sube por encima de ambos umbrales: las alertas siguen abiertas.
	_, err = uc.AdjustStoreStock(ctx, inventory.AdjustStoreStockInput{ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", QuantityChange: 100})
	require.NoError(t, err)

	open := false
	alerts, err := db.Alerts().List(ctx, repository.AlertFilter{OwnerID: ownerID, Resolved: &open})
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}

func TestStoreStock_ThresholdChangeTriggersEvaluation(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	seedItem(t, db, "item-1", 0)
	seedStore(t, db, "store-1")
	uc := newStoreStockUC(db)

	res, err := uc.SetStoreStock(ctx, inventory.SetStoreStockInput{ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", Quantity: intPtr(15)})
	require.NoError(t, err)
	require.Len(t, res.AlertsCreated, 1)
	assert.Equal(t, entity.AlertTypeReorder, res.AlertsCreated[0].AlertType)

	res, err = uc.SetStoreStock(ctx, inventory.SetStoreStockInput{ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", LowStockThreshold: intPtr(15)})
	require.NoError(t, err)
	require.Len(t, res.AlertsCreated, 1)
	assert.Equal(t, entity.AlertTypeLowStock, res.AlertsCreated[0].AlertType)
	assert.Equal(t, 15, res.Stock.Quantity)
}

func TestAdjustStoreStock_RulesAndIsolation(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	seedItem(t, db, "item-1", 40)
	seedStore(t, db, "store-1")
	uc := newStoreStockUC(db)

	_, err := uc.AdjustStoreStock(ctx, inventory.AdjustStoreStockInput{ActorID: ownerID, StoreID: "store-1", ItemID: "item-1"})
	assert.ErrorIs(t, err, domain.ErrZeroDelta)

	_, err = uc.AdjustStoreStock(ctx, inventory.AdjustStoreStockInput{ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", QuantityChange: -1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	si, err := db.StoreStock().Get(ctx, "store-1", "item-1")
	require.NoError(t, err)
	assert.Nil(t, si, "un rechazo no crea el registro")

	res, err := uc.AdjustStoreStock(ctx, inventory.AdjustStoreStockInput{ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", QuantityChange: 30})
	require.NoError(t, err)
	assert.Equal(t, 30, res.Stock.Quantity)

	item, err := db.Items().GetByID(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, 40, item.Quantity, "el stock de tienda no toca la cantidad global")
	changes, err := db.Changes().List(ctx, repository.ChangeFilter{OwnerID: ownerID})
	require.NoError(t, err)
	assert.Empty(t, changes)

	_, err = uc.AdjustStoreStock(ctx, inventory.AdjustStoreStockInput{ActorID: otherID, StoreID: "store-1", ItemID: "item-1", QuantityChange: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveAlert_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	seedItem(t, db, "item-1", 0)
	seedStore(t, db, "store-1")
	res, err := newStoreStockUC(db).SetStoreStock(ctx, inventory.SetStoreStockInput{
		ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", Quantity: intPtr(1),
	})
	require.NoError(t, err)
	alertID := res.AlertsCreated[0].ID

	uc := inventory.NewAlertUseCase(db, db.Alerts())
	first, err := uc.ResolveAlert(ctx, ownerID, alertID)
	require.NoError(t, err)
	require.True(t, first.IsResolved)
	require.NotNil(t, first.ResolvedAt)

	second, err := uc.ResolveAlert(ctx, ownerID, alertID)
	require.NoError(t, err)
	assert.True(t, first.ResolvedAt.Equal(*second.ResolvedAt))

	_, err = uc.ResolveAlert(ctx, otherID, alertID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.ResolveAlert(ctx, ownerID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Resolver no toca el stock.
	si, err := db.StoreStock().Get(ctx, "store-1", "item-1")
	require.NoError(t, err)
	assert.Equal(t, 1, si.Quantity)

	_, err = uc.ListAlerts(ctx, ownerID, repository.AlertFilter{AlertType: "OTRO"})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestStockReport_Totals(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	seedItem(t, db, "item-1", 0)
	seedStore(t, db, "store-1")
	_, err := newStoreStockUC(db).SetStoreStock(ctx, inventory.SetStoreStockInput{
		ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", Quantity: intPtr(30),
	})
	require.NoError(t, err)

	report, err := inventory.NewStockReportUseCase(db.Reports(), db.Stores(), nil).GenerateStockReport(ctx, ownerID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalItems)
	assert.Equal(t, "90", report.TotalValue.String())
	assert.Zero(t, report.LowStockItems)
	assert.Zero(t, report.ItemsNeedingReorder)

	_, err = inventory.NewStockReportUseCase(db.Reports(), db.Stores(), nil).GenerateStockReportPDF(ctx, ownerID, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustStoreStock_CreaLaFilaAntesDeBloquear(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	seedItem(t, db, "item-1", 0)
	seedStore(t, db, "store-1")
	runner := &recordingRunner{inner: db}
	uc := inventory.NewStoreStockUseCase(runner, inventory.NewAlertEngine(logger.Nop()), db.StoreStock(), db.Stores())

	res, err := uc.AdjustStoreStock(ctx, inventory.AdjustStoreStockInput{
		ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", QuantityChange: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Stock.Quantity)
	assert.Equal(t, []string{"CreateIfAbsent", "GetForUpdate", "Save"}, runner.calls)
}

func TestAdjustStoreStock_RespetaUmbralesExistentes(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	seedItem(t, db, "item-1", 0)
	seedStore(t, db, "store-1")
	uc := newStoreStockUC(db)

	_, err := uc.SetStoreStock(ctx, inventory.SetStoreStockInput{
		ActorID: ownerID, StoreID: "store-1", ItemID: "item-1",
		Quantity: intPtr(100), LowStockThreshold: intPtr(3), ReorderPoint: intPtr(4),
	})
	require.NoError(t, err)

	res, err := uc.AdjustStoreStock(ctx, inventory.AdjustStoreStockInput{
		ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", QuantityChange: -90,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Stock.Quantity)
	assert.Equal(t, 3, res.Stock.LowStockThreshold, "un registro existente no vuelve a los valores por defecto")
	assert.Empty(t, res.AlertsCreated)
}

func TestAdjustStoreStock_RechazoNoDejaFila(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	seedItem(t, db, "item-1", 0)
	seedStore(t, db, "store-1")

	_, err := newStoreStockUC(db).AdjustStoreStock(ctx, inventory.AdjustStoreStockInput{
		ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", QuantityChange: -1,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	si, err := db.StoreStock().Get(ctx, "store-1", "item-1")
	require.NoError(t, err)
	assert.Nil(t, si, "la fila creada dentro de la tx se descarta con el rollback")
}

func TestSetStoreStock_SuperaMaximo(t *testing.T) {
	db := memstore.New()
	seedItem(t, db, "item-1", 0)
	seedStore(t, db, "store-1")

	_, err := newStoreStockUC(db).SetStoreStock(context.Background(), inventory.SetStoreStockInput{
		ActorID: ownerID, StoreID: "store-1", ItemID: "item-1", Quantity: intPtr(domaininv.MaxQuantity + 1),
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "quantity", vErr.Fields[0].Field)
}
