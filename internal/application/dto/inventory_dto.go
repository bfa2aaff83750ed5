package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/items/:id/adjust-stock.
type AdjustStockRequest struct {
	QuantityChange int    `json:"quantity_change" validate:"min=-2147483647,max=2147483647"`
	Notes          string `json:"notes" validate:"max=1000"`
}

// CorrectStockRequest body para POST /api/items/:id/correct-stock.
type CorrectStockRequest struct {
	NewQuantity *int   `json:"new_quantity" validate:"required,min=0,max=2147483647"`
	Notes       string `json:"notes" validate:"max=1000"`
}

// AdjustStockResponse resultado de una mutación de cantidad.
type AdjustStockResponse struct {
	PreviousQuantity int                     `json:"previous_quantity"`
	NewQuantity      int                     `json:"new_quantity"`
	ChangeRecordID   string                  `json:"change_record_id"`
	Change           InventoryChangeResponse `json:"change"`
	Item             ItemResponse            `json:"item"`
}

// InventoryChangeResponse asiento del libro.
type InventoryChangeResponse struct {
	ID               string    `json:"id"`
	ItemID           string    `json:"item"`
	ChangeType       string    `json:"change_type"`
	QuantityChange   int       `json:"quantity_change"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	ChangedBy        *string   `json:"changed_by"`
	Timestamp        time.Time `json:"timestamp"`
	Notes            string    `json:"notes"`
}

// ChangeListQuery filtros de GET /api/inventory-changes.
type ChangeListQuery struct {
	PageRequest
	ItemID     string `query:"item_id" validate:"omitempty,uuid"`
	ChangeType string `query:"change_type" validate:"omitempty,oneof=ADD REMOVE ADJUST"`
	Ordering   string `query:"ordering" validate:"omitempty,oneof=timestamp -timestamp"`
}

// InventoryChangeListResponse lista paginada de asientos.
type InventoryChangeListResponse struct {
	Items []InventoryChangeResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// SetStoreStockRequest body para PUT /api/stores/:id/inventory/:item_id.
type SetStoreStockRequest struct {
	Quantity          *int `json:"quantity" validate:"omitempty,min=0,max=2147483647"`
	LowStockThreshold *int `json:"low_stock_threshold" validate:"omitempty,min=0,max=2147483647"`
	ReorderPoint      *int `json:"reorder_point" validate:"omitempty,min=0,max=2147483647"`
	ReorderQuantity   *int `json:"reorder_quantity" validate:"omitempty,min=0,max=2147483647"`
}

// AdjustStoreStockRequest body para POST /api/stores/:id/inventory/:item_id/adjust.
type AdjustStoreStockRequest struct {
	QuantityChange int `json:"quantity_change" validate:"min=-2147483647,max=2147483647"`
}

// StoreInventoryResponse stock de un artículo en una tienda.
type StoreInventoryResponse struct {
	ID                string    `json:"id"`
	StoreID           string    `json:"store"`
	ItemID            string    `json:"item"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	ReorderPoint      int       `json:"reorder_point"`
	ReorderQuantity   int       `json:"reorder_quantity"`
	IsLowStock        bool      `json:"is_low_stock"`
	NeedsReorder      bool      `json:"needs_reorder"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StoreStockWriteResponse resultado de escribir un StoreInventory.
type StoreStockWriteResponse struct {
	Stock         StoreInventoryResponse `json:"stock"`
	AlertsCreated []AlertResponse        `json:"alerts_created"`
}

// AlertResponse alerta de inventario.
type AlertResponse struct {
	ID         string     `json:"id"`
	StoreID    string     `json:"store"`
	ItemID     string     `json:"item"`
	AlertType  string     `json:"alert_type"`
	Message    string     `json:"message"`
	IsResolved bool       `json:"is_resolved"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

// AlertListQuery filtros de GET /api/alerts.
type AlertListQuery struct {
	PageRequest
	StoreID   string `query:"store_id" validate:"omitempty,uuid"`
	ItemID    string `query:"item_id" validate:"omitempty,uuid"`
	AlertType string `query:"alert_type" validate:"omitempty,oneof=LOW_STOCK REORDER EXPIRY"`
	Resolved  *bool  `query:"resolved"`
}

// AlertListResponse lista paginada de alertas.
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ResolveAlertResponse resultado de POST /api/alerts/:id/resolve.
type ResolveAlertResponse struct {
	Resolved   bool          `json:"resolved"`
	ResolvedAt *time.Time    `json:"resolved_at"`
	Alert      AlertResponse `json:"alert"`
}

// StoreBreakdownDTO desglose del reporte por tienda.
type StoreBreakdownDTO struct {
	StoreID             string          `json:"store_id"`
	StoreName           string          `json:"store_name"`
	TotalItems          int             `json:"total_items"`
	TotalValue          decimal.Decimal `json:"total_value"`
	LowStockItems       int             `json:"low_stock_items"`
	ItemsNeedingReorder int             `json:"items_needing_reorder"`
}

// StockReportDTO reporte de stock (GET /api/reports/stock).
type StockReportDTO struct {
	GeneratedAt         time.Time           `json:"generated_at"`
	TotalItems          int                 `json:"total_items"`
	TotalValue          decimal.Decimal     `json:"total_value"`
	LowStockItems       int                 `json:"low_stock_items"`
	ItemsNeedingReorder int                 `json:"items_needing_reorder"`
	StoreBreakdown      []StoreBreakdownDTO `json:"store_breakdown"`
}
