package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// ChangeFilter filtros de listado del libro. OwnerID limita a artículos del usuario.
type ChangeFilter struct {
	OwnerID    string
	ItemID     string
	ChangeType string
	Ascending  bool // por defecto más recientes primero
	Limit      int
	Offset     int
}

// InventoryChangeRepository puerto del libro de movimientos (solo inserción y lectura).
type InventoryChangeRepository interface {
	Create(ctx context.Context, change *entity.InventoryChange) error
	GetByID(ctx context.Context, id string) (*entity.InventoryChange, error)
	List(ctx context.Context, filter ChangeFilter) ([]*entity.InventoryChange, error)
}
