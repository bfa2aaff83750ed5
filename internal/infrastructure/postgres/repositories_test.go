package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

func newAlert() *entity.InventoryAlert {
	return &entity.InventoryAlert{
		ID: "new", StoreID: "s1", ItemID: "i1", AlertType: entity.AlertTypeLowStock,
		Message: "stock bajo", CreatedAt: time.Now(),
	}
}

func TestCreateIfAbsent_Inserta(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{alertRow("new")}}
	a, created, err := NewInventoryAlertRepository(q).CreateIfAbsent(context.Background(), newAlert())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "new", a.ID)
	assert.Len(t, q.sqls, 1)
}

func TestCreateIfAbsent_DevuelveLaAbierta(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{noRows(), alertRow("open")}}
	a, created, err := NewInventoryAlertRepository(q).CreateIfAbsent(context.Background(), newAlert())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "open", a.ID)
}

func TestCreateIfAbsent_AbiertaResueltaEntreInsertYSelect(t *testing.T) {
	// INSERT choca, la alerta abierta se resuelve antes del SELECT y el segundo INSERT entra.
	q := &fakeQuerier{rows: []fakeRow{noRows(), noRows(), alertRow("new")}}
	a, created, err := NewInventoryAlertRepository(q).CreateIfAbsent(context.Background(), newAlert())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "new", a.ID)
	require.Len(t, q.sqls, 3)
	assert.Contains(t, q.sqls[2], "INSERT INTO inventory_alerts")
}

func TestCreateIfAbsent_CarreraPersistenteEsConflicto(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{noRows(), noRows(), noRows(), noRows()}}
	_, _, err := NewInventoryAlertRepository(q).CreateIfAbsent(context.Background(), newAlert())
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestStoreInventory_CreateIfAbsentNoPisaExistente(t *testing.T) {
	q := &fakeQuerier{}
	si := entity.NewStoreInventory("s1", "i1")
	si.ID = "si-1"
	require.NoError(t, NewStoreInventoryRepository(q).CreateIfAbsent(context.Background(), si))

	require.Len(t, q.execs, 1)
	sql := strings.Join(strings.Fields(q.execs[0]), " ")
	assert.Contains(t, sql, "INSERT INTO store_inventory")
	assert.Contains(t, sql, "ON CONFLICT (store_id, item_id) DO NOTHING")
}

func TestItemOrderBy(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "created_at DESC, id"},
		{"name", "name ASC, id"},
		{"-price", "price DESC, id"},
		{"quantity", "quantity ASC, id"},
		{"-created_at", "created_at DESC, id"},
	}
	for _, tt := range tests {
		got, err := itemOrderBy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"owner_id", "name; DROP TABLE inventory_items", "--name"} {
		_, err := itemOrderBy(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func TestItemList_BusquedaEscapaComodines(t *testing.T) {
	q := &fakeQuerier{}
	_, _ = NewInventoryItemRepository(q).List(context.Background(), repository.ItemFilter{
		OwnerID: "u1", Search: `50%_a\b`, Ordering: "-name", Limit: 10,
	})
	require.Len(t, q.queries, 1)
	assert.Contains(t, q.queries[0], `name ILIKE $2 ESCAPE '\'`)
	assert.Contains(t, q.queries[0], "ORDER BY name DESC, id")
	assert.Equal(t, []any{"u1", `%50\%\_a\\b%`, 10, 0}, q.queryArgs[0])
}

func TestItemList_OrderingNoPermitidoNoConsulta(t *testing.T) {
	q := &fakeQuerier{}
	_, err := NewInventoryItemRepository(q).List(context.Background(), repository.ItemFilter{OwnerID: "u1", Ordering: "owner_id"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, q.queries)
}
