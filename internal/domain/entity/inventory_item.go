package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del catálogo global de un usuario.
// Quantity solo cambia a través del libro de movimientos (InventoryChange).
type InventoryItem struct {
	ID          string
	OwnerID     string // usuario creador
	Name        string
	Description string
	Quantity    int
	Price       decimal.Decimal
	CategoryID  *string
	SupplierID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy indica si el artículo pertenece al usuario.
func (i *InventoryItem) OwnedBy(userID string) bool {
	return i != nil && userID != "" && i.OwnerID == userID
}
