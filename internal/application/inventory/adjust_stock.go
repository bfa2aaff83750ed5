package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// AdjustStockUseCase es el único punto de entrada para mutar InventoryItem.Quantity.
// Cada mutación aceptada escribe exactamente un asiento en el libro, en la misma transacción,
// con bloqueo de fila (SELECT FOR UPDATE) sobre el artículo.
type AdjustStockUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
	now      func() time.Time
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, log *logger.Logger) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, log: log.Component("stock_mutator"), now: time.Now}
}

// AdjustStockInput entrada de un ajuste por variación.
type AdjustStockInput struct {
	ActorID        string
	ItemID         string
	QuantityChange int
	Notes          string
}

// CorrectStockInput entrada de una corrección directa (asiento ADJUST).
type CorrectStockInput struct {
	ActorID     string
	ItemID      string
	NewQuantity int
	Notes       string
}

// AdjustStockResult resultado de una mutación aceptada.
type AdjustStockResult struct {
	Item   *entity.InventoryItem
	Change *entity.InventoryChange
}

// AdjustStock aplica delta a la cantidad del artículo.
//
// Errores:
//   - domain.ErrZeroDelta         si QuantityChange == 0 (sin lecturas ni escrituras).
//   - domain.ErrNotFound          si el artículo no existe o no pertenece al actor.
//   - domain.ErrInsufficientStock si la cantidad quedaría negativa (nada se escribe).
//   - domain.ErrConflict          si la transacción falla por concurrencia dos veces seguidas.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, in AdjustStockInput) (*AdjustStockResult, error) {
	if in.QuantityChange == 0 {
		return nil, domain.ErrZeroDelta
	}
	if in.ItemID == "" {
		return nil, domain.NewValidationError("item_id", "es requerido")
	}
	return uc.mutate(ctx, in.ActorID, in.ItemID, func(item *entity.InventoryItem, now time.Time) (*entity.InventoryChange, error) {
		return domaininv.NewChange(item.ID, item.Quantity, in.QuantityChange, in.ActorID, in.Notes, now)
	})
}

// CorrectStock fija la cantidad del artículo a NewQuantity registrando un asiento ADJUST.
// Reservado para correcciones administrativas (conteo físico, reinicio de cantidades).
func (uc *AdjustStockUseCase) CorrectStock(ctx context.Context, in CorrectStockInput) (*AdjustStockResult, error) {
	if in.NewQuantity < 0 {
		return nil, domain.NewValidationError("new_quantity", "debe ser mayor o igual a 0")
	}
	if in.ItemID == "" {
		return nil, domain.NewValidationError("item_id", "es requerido")
	}
	return uc.mutate(ctx, in.ActorID, in.ItemID, func(item *entity.InventoryItem, now time.Time) (*entity.InventoryChange, error) {
		return domaininv.NewCorrection(item.ID, item.Quantity, in.NewQuantity, in.ActorID, in.Notes, now)
	})
}

// mutate ejecuta la lectura-bloqueo-escritura en una transacción. Reintenta una sola vez ante
// domain.ErrConflict; nunca aplica una variación calculada sobre una cantidad vieja.
func (uc *AdjustStockUseCase) mutate(
	ctx context.Context,
	actorID, itemID string,
	build func(item *entity.InventoryItem, now time.Time) (*entity.InventoryChange, error),
) (*AdjustStockResult, error) {
	var result *AdjustStockResult
	run := func() error {
		return uc.txRunner.Run(ctx, func(repos TxRepos) error {
			item, err := repos.Items.GetForUpdate(ctx, itemID)
			if err != nil {
				return err
			}
			if item == nil || !item.OwnedBy(actorID) {
				return domain.ErrNotFound
			}
			now := uc.now()
			change, err := build(item, now)
			if err != nil {
				return err
			}
			// Asiento primero, luego la cantidad; ambos en la misma tx.
			if err := repos.Changes.Create(ctx, change); err != nil {
				return err
			}
			if err := repos.Items.UpdateQuantity(ctx, item.ID, change.NewQuantity); err != nil {
				return err
			}
			item.Quantity = change.NewQuantity
			item.UpdatedAt = now
			result = &AdjustStockResult{Item: item, Change: change}
			return nil
		})
	}

	err := run()
	if errors.Is(err, domain.ErrConflict) {
		uc.log.Warn().Str("item_id", itemID).Msg("conflicto de concurrencia en ajuste de stock, reintentando")
		result = nil
		err = run()
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
