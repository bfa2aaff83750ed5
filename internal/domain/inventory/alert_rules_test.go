package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

func stockWith(qty, low, reorder int) *entity.StoreInventory {
	si := entity.NewStoreInventory("store-1", "item-1")
	si.Quantity = qty
	si.LowStockThreshold = low
	si.ReorderPoint = reorder
	return si
}

func TestAlertCandidates_AmbosPredicados(t *testing.T) {
	got := inventory.AlertCandidates(stockWith(8, 10, 20), "Tornillo", "Centro")
	require.Len(t, got, 2)
	assert.Equal(t, entity.AlertTypeLowStock, got[0].AlertType)
	assert.Contains(t, got[0].Message, "Tornillo")
	assert.Contains(t, got[0].Message, "Centro")
	assert.Contains(t, got[0].Message, "8")
	assert.Equal(t, entity.AlertTypeReorder, got[1].AlertType)
	assert.Contains(t, got[1].Message, "50", "el mensaje de reorden incluye la cantidad sugerida")
}

func TestAlertCandidates_SinAlertas(t *testing.T) {
	assert.Empty(t, inventory.AlertCandidates(stockWith(25, 10, 20), "Tornillo", "Centro"))
}

func TestAlertCandidates_PredicadosIndependientes(t *testing.T) {
	// umbral de stock bajo por encima del punto de reorden
	got := inventory.AlertCandidates(stockWith(15, 20, 10), "A", "B")
	require.Len(t, got, 1)
	assert.Equal(t, entity.AlertTypeLowStock, got[0].AlertType)

	got = inventory.AlertCandidates(stockWith(15, 10, 20), "A", "B")
	require.Len(t, got, 1)
	assert.Equal(t, entity.AlertTypeReorder, got[0].AlertType)
}

func TestAlertCandidates_LimiteInclusivo(t *testing.T) {
	got := inventory.AlertCandidates(stockWith(10, 10, 10), "A", "B")
	assert.Len(t, got, 2)
}
