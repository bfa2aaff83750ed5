package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// StoreStockUseCase mantiene el stock por tienda (StoreInventory). Es independiente de
// InventoryItem.Quantity: no escribe en el libro ni modifica la cantidad global del artículo.
// Toda escritura invoca el AlertEngine dentro de la misma transacción.
type StoreStockUseCase struct {
	txRunner  TxRunner
	engine    *AlertEngine
	stockRepo repository.StoreInventoryRepository
	storeRepo repository.StoreRepository
	now       func() time.Time
}

// NewStoreStockUseCase construye el caso de uso.
func NewStoreStockUseCase(
	txRunner TxRunner,
	engine *AlertEngine,
	stockRepo repository.StoreInventoryRepository,
	storeRepo repository.StoreRepository,
) *StoreStockUseCase {
	return &StoreStockUseCase{
		txRunner:  txRunner,
		engine:    engine,
		stockRepo: stockRepo,
		storeRepo: storeRepo,
		now:       time.Now,
	}
}

// SetStoreStockInput crea o actualiza un registro. Los campos nil conservan el valor actual
// (o el valor por defecto si el registro es nuevo).
type SetStoreStockInput struct {
	ActorID           string
	StoreID           string
	ItemID            string
	Quantity          *int
	LowStockThreshold *int
	ReorderPoint      *int
	ReorderQuantity   *int
}

// AdjustStoreStockInput variación con signo sobre el stock de la tienda.
type AdjustStoreStockInput struct {
	ActorID        string
	StoreID        string
	ItemID         string
	QuantityChange int
}

// StoreStockResult registro resultante y alertas creadas por la escritura.
type StoreStockResult struct {
	Stock         *entity.StoreInventory
	AlertsCreated []*entity.InventoryAlert
}

// SetStoreStock crea o actualiza cantidad y umbrales del par (tienda, artículo).
func (uc *StoreStockUseCase) SetStoreStock(ctx context.Context, in SetStoreStockInput) (*StoreStockResult, error) {
	if err := validateSetStoreStock(in); err != nil {
		return nil, err
	}
	return uc.write(ctx, in.ActorID, in.StoreID, in.ItemID, func(si *entity.StoreInventory) error {
		if in.Quantity != nil {
			si.Quantity = *in.Quantity
		}
		if in.LowStockThreshold != nil {
			si.LowStockThreshold = *in.LowStockThreshold
		}
		if in.ReorderPoint != nil {
			si.ReorderPoint = *in.ReorderPoint
		}
		if in.ReorderQuantity != nil {
			si.ReorderQuantity = *in.ReorderQuantity
		}
		return nil
	})
}

// AdjustStoreStock aplica una variación al stock de la tienda con las mismas reglas
// que el libro global: delta distinto de cero y resultado no negativo.
func (uc *StoreStockUseCase) AdjustStoreStock(ctx context.Context, in AdjustStoreStockInput) (*StoreStockResult, error) {
	if in.QuantityChange == 0 {
		return nil, domain.ErrZeroDelta
	}
	return uc.write(ctx, in.ActorID, in.StoreID, in.ItemID, func(si *entity.StoreInventory) error {
		next, err := domaininv.ApplyDelta(si.Quantity, in.QuantityChange)
		if err != nil {
			return err
		}
		si.Quantity = next
		return nil
	})
}

// ListStoreStock lista el stock de una tienda del actor.
func (uc *StoreStockUseCase) ListStoreStock(ctx context.Context, actorID, storeID string) ([]*entity.StoreInventory, error) {
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !store.OwnedBy(actorID) {
		return nil, domain.ErrNotFound
	}
	return uc.stockRepo.ListByStore(ctx, storeID)
}

// write crea (si falta) y bloquea el registro, aplica mutate, lo guarda y evalúa alertas.
func (uc *StoreStockUseCase) write(
	ctx context.Context,
	actorID, storeID, itemID string,
	mutate func(si *entity.StoreInventory) error,
) (*StoreStockResult, error) {
	var result *StoreStockResult
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		store, err := repos.Stores.GetByID(ctx, storeID)
		if err != nil {
			return err
		}
		item, err := repos.Items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if !store.OwnedBy(actorID) || !item.OwnedBy(actorID) {
			return domain.ErrNotFound
		}

		// El par se crea antes de bloquearlo: FOR UPDATE sobre una fila inexistente no bloquea nada.
		fresh := entity.NewStoreInventory(storeID, itemID)
		fresh.ID = uuid.New().String()
		fresh.UpdatedAt = uc.now()
		if err := repos.StoreStock.CreateIfAbsent(ctx, fresh); err != nil {
			return err
		}
		si, err := repos.StoreStock.GetForUpdate(ctx, storeID, itemID)
		if err != nil {
			return err
		}
		if si == nil {
			return fmt.Errorf("store inventory %s/%s: fila ausente tras crearla", storeID, itemID)
		}
		if err := mutate(si); err != nil {
			return err
		}
		si.UpdatedAt = uc.now()
		if err := repos.StoreStock.Save(ctx, si); err != nil {
			return err
		}

		created, err := uc.engine.Evaluate(ctx, repos.Alerts, si, item, store)
		if err != nil {
			return err
		}
		result = &StoreStockResult{Stock: si, AlertsCreated: created}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func validateSetStoreStock(in SetStoreStockInput) error {
	var fields []domain.FieldError
	check := func(name string, v *int) {
		switch {
		case v == nil:
		case *v < 0:
			fields = append(fields, domain.FieldError{Field: name, Message: "debe ser mayor o igual a 0"})
		case *v > domaininv.MaxQuantity:
			fields = append(fields, domain.FieldError{Field: name, Message: "supera el máximo permitido"})
		}
	}
	check("quantity", in.Quantity)
	check("low_stock_threshold", in.LowStockThreshold)
	check("reorder_point", in.ReorderPoint)
	check("reorder_quantity", in.ReorderQuantity)
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
