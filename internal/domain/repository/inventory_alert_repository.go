package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// AlertFilter filtros de listado de alertas. OwnerID limita a tiendas del usuario.
type AlertFilter struct {
	OwnerID   string
	StoreID   string
	ItemID    string
	AlertType string
	Resolved  *bool
	Limit     int
	Offset    int
}

// InventoryAlertRepository puerto de persistencia para InventoryAlert. No expone borrado.
type InventoryAlertRepository interface {
	// CreateIfAbsent inserta la alerta solo si no existe otra abierta con el mismo
	// (store, item, tipo). Devuelve la alerta vigente y si fue creada.
	CreateIfAbsent(ctx context.Context, alert *entity.InventoryAlert) (*entity.InventoryAlert, bool, error)
	GetByID(ctx context.Context, id string) (*entity.InventoryAlert, error)
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryAlert, error)
	MarkResolved(ctx context.Context, id string, resolvedAt time.Time) error
	List(ctx context.Context, filter AlertFilter) ([]*entity.InventoryAlert, error)
}
