package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// StoreInventoryRepository puerto para el stock por tienda+artículo.
type StoreInventoryRepository interface {
	// Get devuelve nil, nil si no existe registro para el par.
	Get(ctx context.Context, storeID, itemID string) (*entity.StoreInventory, error)
	// CreateIfAbsent inserta si para el par no hay registro; uno existente no se modifica.
	// Tras llamarlo, GetForUpdate siempre encuentra una fila que bloquear.
	CreateIfAbsent(ctx context.Context, si *entity.StoreInventory) error
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, storeID, itemID string) (*entity.StoreInventory, error)
	// Save inserta o actualiza el registro (único por StoreID+ItemID).
	Save(ctx context.Context, si *entity.StoreInventory) error
	ListByStore(ctx context.Context, storeID string) ([]*entity.StoreInventory, error)
}
