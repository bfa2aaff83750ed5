package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ItemUseCase casos de uso del catálogo. La cantidad solo cambia vía AdjustStockUseCase.
type ItemUseCase struct {
	txRunner inventory.TxRunner
	repo     repository.InventoryItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(txRunner inventory.TxRunner, repo repository.InventoryItemRepository) *ItemUseCase {
	return &ItemUseCase{txRunner: txRunner, repo: repo}
}

// Create crea un artículo. Si la cantidad inicial es mayor que cero se registra en el libro
// un asiento ADJUST 0 -> cantidad, en la misma transacción.
func (uc *ItemUseCase) Create(ctx context.Context, ownerID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "debe ser mayor o igual a 0")
	}
	if in.Quantity > domaininv.MaxQuantity {
		return nil, domain.NewValidationError("quantity", "supera el máximo permitido")
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.NewValidationError("price", "debe ser mayor o igual a 0")
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.txRunner.Run(ctx, func(repos inventory.TxRepos) error {
		if err := repos.Items.Create(ctx, item); err != nil {
			return err
		}
		if in.Quantity == 0 {
			return nil
		}
		change, err := domaininv.NewCorrection(item.ID, 0, in.Quantity, ownerID, "cantidad inicial", now)
		if err != nil {
			return err
		}
		if err := repos.Changes.Create(ctx, change); err != nil {
			return err
		}
		item.Quantity = change.NewQuantity
		return repos.Items.UpdateQuantity(ctx, item.ID, item.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// GetByID obtiene un artículo del actor. domain.ErrNotFound si no existe o es de otro usuario.
func (uc *ItemUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.OwnedBy(ownerID) {
		return nil, domain.ErrNotFound
	}
	return ToItemResponse(item), nil
}

// List lista artículos del actor con filtros de precio, categoría, stock bajo y búsqueda por nombre.
func (uc *ItemUseCase) List(ctx context.Context, ownerID string, q dto.ItemListQuery) (*dto.ItemListResponse, error) {
	q.DefaultPage()
	filter := repository.ItemFilter{
		OwnerID:    ownerID,
		CategoryID: q.CategoryID,
		LowStock:   q.LowStock,
		Search:     strings.TrimSpace(q.Search),
		Ordering:   q.Ordering,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
	if q.MinPrice != "" {
		d, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return nil, domain.NewValidationError("min_price", "debe ser numérico")
		}
		filter.MinPrice = &d
	}
	if q.MaxPrice != "" {
		d, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return nil, domain.NewValidationError("max_price", "debe ser numérico")
		}
		filter.MaxPrice = &d
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *ToItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

// ToItemResponse convierte la entidad a DTO.
func ToItemResponse(i *entity.InventoryItem) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Quantity:    i.Quantity,
		Price:       i.Price,
		CategoryID:  i.CategoryID,
		SupplierID:  i.SupplierID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
