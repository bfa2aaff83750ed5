package entity

import "time"

// Tipos de cambio del libro de inventario.
const (
	ChangeTypeAdd    = "ADD"    // entrada por ajuste positivo
	ChangeTypeRemove = "REMOVE" // salida por ajuste negativo
	ChangeTypeAdjust = "ADJUST" // corrección directa de la cantidad
)

// InventoryChange registro inmutable de una mutación de cantidad de un InventoryItem.
// Invariante: NewQuantity = PreviousQuantity + QuantityChange y NewQuantity >= 0.
type InventoryChange struct {
	ID               string
	ItemID           string
	ChangeType       string
	QuantityChange   int
	PreviousQuantity int
	NewQuantity      int
	ChangedBy        *string // nil si el usuario fue eliminado
	Timestamp        time.Time
	Notes            string
}

// ValidChangeType indica si t es un tipo de cambio conocido.
func ValidChangeType(t string) bool {
	switch t {
	case ChangeTypeAdd, ChangeTypeRemove, ChangeTypeAdjust:
		return true
	}
	return false
}
