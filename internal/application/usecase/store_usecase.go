package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una nueva tienda activa del actor.
func (uc *StoreUseCase) Create(ctx context.Context, ownerID string, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	now := time.Now()
	store := &entity.Store{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Name:          in.Name,
		Address:       in.Address,
		ContactNumber: in.ContactNumber,
		Email:         in.Email,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda del actor.
func (uc *StoreUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !store.OwnedBy(ownerID) {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(store), nil
}

// List lista tiendas del actor con paginación.
func (uc *StoreUseCase) List(ctx context.Context, ownerID string, limit, offset int) (*dto.StoreListResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Name:          s.Name,
		Address:       s.Address,
		ContactNumber: s.ContactNumber,
		Email:         s.Email,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
