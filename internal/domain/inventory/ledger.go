package inventory

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// MaxQuantity tope de cantidades y variaciones: las columnas son INTEGER (int4).
const MaxQuantity = math.MaxInt32

// ApplyDelta calcula la nueva cantidad para una variación con signo.
// Rechaza delta cero y resultados negativos (no se recorta a cero). Variaciones o resultados
// fuera de [-MaxQuantity, MaxQuantity] son errores de validación sobre quantity_change.
func ApplyDelta(previous, delta int) (int, error) {
	if delta == 0 {
		return 0, domain.ErrZeroDelta
	}
	if delta > MaxQuantity || delta < -MaxQuantity {
		return 0, domain.NewValidationError("quantity_change", "fuera de rango")
	}
	next := previous + delta
	if next < 0 {
		return 0, domain.ErrInsufficientStock
	}
	if next > MaxQuantity {
		return 0, domain.NewValidationError("quantity_change", "la cantidad resultante supera el máximo permitido")
	}
	return next, nil
}

// NewChange construye el asiento del libro para un ajuste por variación (ADD o REMOVE).
func NewChange(itemID string, previous, delta int, actorID, notes string, now time.Time) (*entity.InventoryChange, error) {
	next, err := ApplyDelta(previous, delta)
	if err != nil {
		return nil, err
	}
	changeType := entity.ChangeTypeAdd
	if delta < 0 {
		changeType = entity.ChangeTypeRemove
	}
	return buildChange(itemID, changeType, previous, next, actorID, notes, now), nil
}

// NewCorrection construye el asiento ADJUST de una corrección directa a newQuantity.
func NewCorrection(itemID string, previous, newQuantity int, actorID, notes string, now time.Time) (*entity.InventoryChange, error) {
	if newQuantity < 0 {
		return nil, domain.NewValidationError("new_quantity", "debe ser mayor o igual a 0")
	}
	if newQuantity > MaxQuantity {
		return nil, domain.NewValidationError("new_quantity", "supera el máximo permitido")
	}
	if newQuantity == previous {
		return nil, domain.ErrZeroDelta
	}
	return buildChange(itemID, entity.ChangeTypeAdjust, previous, newQuantity, actorID, notes, now), nil
}

func buildChange(itemID, changeType string, previous, next int, actorID, notes string, now time.Time) *entity.InventoryChange {
	var changedBy *string
	if actorID != "" {
		a := actorID
		changedBy = &a
	}
	return &entity.InventoryChange{
		ID:               uuid.New().String(),
		ItemID:           itemID,
		ChangeType:       changeType,
		QuantityChange:   next - previous,
		PreviousQuantity: previous,
		NewQuantity:      next,
		ChangedBy:        changedBy,
		Timestamp:        now,
		Notes:            notes,
	}
}
