package inventory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// LedgerUseCase lectura del libro de movimientos, limitada a los artículos del actor.
type LedgerUseCase struct {
	changeRepo repository.InventoryChangeRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(changeRepo repository.InventoryChangeRepository) *LedgerUseCase {
	return &LedgerUseCase{changeRepo: changeRepo}
}

// ListChanges lista asientos del libro. filter.OwnerID se fuerza al actor.
func (uc *LedgerUseCase) ListChanges(ctx context.Context, actorID string, filter repository.ChangeFilter) ([]*entity.InventoryChange, error) {
	if filter.ChangeType != "" && !entity.ValidChangeType(filter.ChangeType) {
		return nil, domain.NewValidationError("change_type", "debe ser ADD, REMOVE o ADJUST")
	}
	filter.OwnerID = actorID
	return uc.changeRepo.List(ctx, filter)
}
