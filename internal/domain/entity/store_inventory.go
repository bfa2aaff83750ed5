package entity

import "time"

// Valores por defecto de un registro de stock por tienda.
const (
	DefaultLowStockThreshold = 10
	DefaultReorderPoint      = 20
	DefaultReorderQuantity   = 50
)

// StoreInventory stock de un artículo en una tienda (único por StoreID+ItemID).
type StoreInventory struct {
	ID                string
	StoreID           string
	ItemID            string
	Quantity          int
	LowStockThreshold int
	ReorderPoint      int
	ReorderQuantity   int
	UpdatedAt         time.Time
}

// NewStoreInventory crea el registro con los umbrales por defecto y cantidad 0.
func NewStoreInventory(storeID, itemID string) *StoreInventory {
	return &StoreInventory{
		StoreID:           storeID,
		ItemID:            itemID,
		LowStockThreshold: DefaultLowStockThreshold,
		ReorderPoint:      DefaultReorderPoint,
		ReorderQuantity:   DefaultReorderQuantity,
	}
}

// IsLowStock cantidad igual o menor al umbral de stock bajo.
func (s *StoreInventory) IsLowStock() bool {
	return s.Quantity <= s.LowStockThreshold
}

// NeedsReorder cantidad igual o menor al punto de reorden.
func (s *StoreInventory) NeedsReorder() bool {
	return s.Quantity <= s.ReorderPoint
}
