package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memstore"
)

const ownerID = "00000000-0000-0000-0000-000000000001"

func TestItemCreate_InitialQuantityIsLedgered(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	uc := usecase.NewItemUseCase(db, db.Items())

	out, err := uc.Create(ctx, ownerID, dto.CreateItemRequest{Name: "Tuerca", Quantity: 12, Price: decimal.NewFromInt(2)})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Quantity)

	changes, err := db.Changes().List(ctx, repository.ChangeFilter{OwnerID: ownerID, ItemID: out.ID})
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, entity.ChangeTypeAdjust, changes[0].ChangeType)
	assert.Equal(t, 0, changes[0].PreviousQuantity)
	assert.Equal(t, 12, changes[0].NewQuantity)
}

func TestItemCreate_ZeroQuantityHasNoEntry(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	out, err := usecase.NewItemUseCase(db, db.Items()).Create(ctx, ownerID, dto.CreateItemRequest{Name: "Arandela"})
	require.NoError(t, err)

	changes, err := db.Changes().List(ctx, repository.ChangeFilter{OwnerID: ownerID, ItemID: out.ID})
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestItemCreate_Validation(t *testing.T) {
	db := memstore.New()
	uc := usecase.NewItemUseCase(db, db.Items())

	tests := []struct {
		name  string
		in    dto.CreateItemRequest
		field string
	}{
		{"sin nombre", dto.CreateItemRequest{Quantity: 1}, "name"},
		{"cantidad negativa", dto.CreateItemRequest{Name: "x", Quantity: -1}, "quantity"},
		{"precio negativo", dto.CreateItemRequest{Name: "x", Price: decimal.NewFromInt(-1)}, "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), ownerID, tt.in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Fields[0].Field)
		})
	}
}

func TestItemList_PriceFilters(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	uc := usecase.NewItemUseCase(db, db.Items())
	for _, p := range []int64{5, 15, 25} {
		_, err := uc.Create(ctx, ownerID, dto.CreateItemRequest{Name: "p", Price: decimal.NewFromInt(p)})
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, ownerID, dto.ItemListQuery{MinPrice: "10", MaxPrice: "20"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Price.Equal(decimal.NewFromInt(15)))

	_, err = uc.List(ctx, ownerID, dto.ItemListQuery{MinPrice: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemGetByID_OtherOwner(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	uc := usecase.NewItemUseCase(db, db.Items())
	out, err := uc.Create(ctx, ownerID, dto.CreateItemRequest{Name: "Clavo"})
	require.NoError(t, err)

	_, err = uc.GetByID(ctx, "otro", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemList_BusquedaYOrden(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	uc := usecase.NewItemUseCase(db, db.Items())
	for _, in := range []dto.CreateItemRequest{
		{Name: "Tornillo largo", Quantity: 7, Price: decimal.NewFromInt(3)},
		{Name: "Tuerca", Quantity: 2, Price: decimal.NewFromInt(1)},
		{Name: "tornillo corto", Quantity: 9, Price: decimal.NewFromInt(2)},
	} {
		_, err := uc.Create(ctx, ownerID, in)
		require.NoError(t, err)
	}
	names := func(out *dto.ItemListResponse) []string {
		var ns []string
		for _, it := range out.Items {
			ns = append(ns, it.Name)
		}
		return ns
	}

	out, err := uc.List(ctx, ownerID, dto.ItemListQuery{Search: "TORNI", Ordering: "price"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tornillo corto", "Tornillo largo"}, names(out))

	out, err = uc.List(ctx, ownerID, dto.ItemListQuery{Ordering: "-quantity"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tornillo corto", "Tornillo largo", "Tuerca"}, names(out))

	// Los comodines se buscan literalmente.
	out, err = uc.List(ctx, ownerID, dto.ItemListQuery{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	_, err = uc.List(ctx, ownerID, dto.ItemListQuery{Ordering: "owner_id"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
