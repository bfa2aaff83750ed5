package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// AlertUseCase ciclo de vida de las alertas: listado y resolución manual.
type AlertUseCase struct {
	txRunner  TxRunner
	alertRepo repository.InventoryAlertRepository
	now       func() time.Time
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(txRunner TxRunner, alertRepo repository.InventoryAlertRepository) *AlertUseCase {
	return &AlertUseCase{txRunner: txRunner, alertRepo: alertRepo, now: time.Now}
}

// ResolveAlert marca la alerta como resuelta. Es idempotente: si ya estaba resuelta
// devuelve la alerta con su resolved_at original.
// domain.ErrNotFound si la alerta no existe o su tienda no pertenece al actor.
func (uc *AlertUseCase) ResolveAlert(ctx context.Context, actorID, alertID string) (*entity.InventoryAlert, error) {
	if alertID == "" {
		return nil, domain.NewValidationError("id", "es requerido")
	}
	var out *entity.InventoryAlert
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		alert, err := repos.Alerts.GetForUpdate(ctx, alertID)
		if err != nil {
			return err
		}
		if alert == nil {
			return domain.ErrNotFound
		}
		store, err := repos.Stores.GetByID(ctx, alert.StoreID)
		if err != nil {
			return err
		}
		if !store.OwnedBy(actorID) {
			return domain.ErrNotFound
		}
		if alert.Resolve(uc.now()) {
			if err := repos.Alerts.MarkResolved(ctx, alert.ID, *alert.ResolvedAt); err != nil {
				return err
			}
		}
		out = alert
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListAlerts lista las alertas de las tiendas del actor, más recientes primero.
func (uc *AlertUseCase) ListAlerts(ctx context.Context, actorID string, filter repository.AlertFilter) ([]*entity.InventoryAlert, error) {
	if filter.AlertType != "" && !entity.ValidAlertType(filter.AlertType) {
		return nil, domain.NewValidationError("alert_type", "debe ser LOW_STOCK, REORDER o EXPIRY")
	}
	filter.OwnerID = actorID
	return uc.alertRepo.List(ctx, filter)
}
