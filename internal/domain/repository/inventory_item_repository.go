package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ItemFilter filtros de listado de artículos (todos opcionales salvo OwnerID).
type ItemFilter struct {
	OwnerID    string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	LowStock   *int   // quantity <= LowStock
	Search     string // subcadena del nombre, sin distinguir mayúsculas
	Ordering   string // uno de ItemOrderings, "-" delante para descendente; vacío: más recientes primero
	Limit      int
	Offset     int
}

// ItemOrderings campos por los que se puede ordenar el listado de artículos.
var ItemOrderings = []string{"name", "price", "quantity", "created_at"}

// InventoryItemRepository define el puerto de persistencia para InventoryItem (DIP).
// La cantidad solo se modifica con UpdateQuantity, dentro de la misma transacción que el asiento del libro.
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	List(ctx context.Context, filter ItemFilter) ([]*entity.InventoryItem, error)
}
