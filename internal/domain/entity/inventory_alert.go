package entity

import "time"

// Tipos de alerta.
const (
	AlertTypeLowStock = "LOW_STOCK"
	AlertTypeReorder  = "REORDER"
	AlertTypeExpiry   = "EXPIRY" // válido para persistir; ninguna regla lo genera todavía
)

// InventoryAlert notificación derivada del stock de una tienda.
// Solo puede existir una alerta abierta por (StoreID, ItemID, AlertType). Nunca se elimina.
type InventoryAlert struct {
	ID         string
	StoreID    string
	ItemID     string
	AlertType  string
	Message    string
	IsResolved bool
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// Resolve marca la alerta como resuelta. Si ya estaba resuelta conserva la primera fecha
// y devuelve false.
func (a *InventoryAlert) Resolve(now time.Time) bool {
	if a.IsResolved {
		return false
	}
	a.IsResolved = true
	a.ResolvedAt = &now
	return true
}

// ValidAlertType indica si t es un tipo de alerta conocido.
func ValidAlertType(t string) bool {
	switch t {
	case AlertTypeLowStock, AlertTypeReorder, AlertTypeExpiry:
		return true
	}
	return false
}
