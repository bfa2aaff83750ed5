package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo del catálogo.
// Quantity inicial > 0 queda registrada en el libro como ADJUST desde 0.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" validate:"min=0,max=2147483647"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *string         `json:"category_id" validate:"omitempty,uuid"`
	SupplierID  *string         `json:"supplier_id" validate:"omitempty,uuid"`
}

// ItemListQuery filtros de GET /api/items.
type ItemListQuery struct {
	PageRequest
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
	MinPrice   string `query:"min_price" validate:"omitempty,numeric"`
	MaxPrice   string `query:"max_price" validate:"omitempty,numeric"`
	LowStock   *int   `query:"low_stock" validate:"omitempty,min=0"`
	Search     string `query:"search" validate:"max=200"`
	Ordering   string `query:"ordering" validate:"omitempty,oneof=name -name price -price quantity -quantity created_at -created_at"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *string         `json:"category_id"`
	SupplierID  *string         `json:"supplier_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
