package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// AlertEngine deriva alertas a partir del estado actual de un StoreInventory.
// Se invoca de forma explícita después de cada escritura del registro, dentro de la misma tx.
// Nunca resuelve alertas: una alerta abierta solo se cierra con AlertUseCase.ResolveAlert.
type AlertEngine struct {
	log *logger.Logger
	now func() time.Time
}

// NewAlertEngine construye el motor de alertas.
func NewAlertEngine(log *logger.Logger) *AlertEngine {
	return &AlertEngine{log: log.Component("alert_engine"), now: time.Now}
}

// Evaluate asegura una alerta abierta por cada predicado que se cumpla (LOW_STOCK, REORDER).
// Si ya existe una abierta del mismo tipo no crea otra ni actualiza su mensaje.
// Devuelve solo las alertas creadas en esta evaluación.
func (e *AlertEngine) Evaluate(
	ctx context.Context,
	alerts repository.InventoryAlertRepository,
	si *entity.StoreInventory,
	item *entity.InventoryItem,
	store *entity.Store,
) ([]*entity.InventoryAlert, error) {
	var created []*entity.InventoryAlert
	for _, c := range domaininv.AlertCandidates(si, item.Name, store.Name) {
		alert := &entity.InventoryAlert{
			ID:        uuid.New().String(),
			StoreID:   si.StoreID,
			ItemID:    si.ItemID,
			AlertType: c.AlertType,
			Message:   c.Message,
			CreatedAt: e.now(),
		}
		current, isNew, err := alerts.CreateIfAbsent(ctx, alert)
		if err != nil {
			return nil, err
		}
		if !isNew {
			continue
		}
		e.log.Info().
			Str("alert_id", current.ID).
			Str("alert_type", current.AlertType).
			Str("store_id", current.StoreID).
			Str("item_id", current.ItemID).
			Int("quantity", si.Quantity).
			Msg("alerta de inventario creada")
		created = append(created, current)
	}
	return created, nil
}
