package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StoreStockSummary agregado de stock de una tienda.
type StoreStockSummary struct {
	StoreID             string
	StoreName           string
	TotalItems          int
	TotalValue          decimal.Decimal // suma de quantity * precio del artículo
	LowStockItems       int
	ItemsNeedingReorder int
}

// ReportRepository consultas de solo lectura sobre el stock por tienda.
type ReportRepository interface {
	// StockSummaryByStore devuelve un resumen por cada tienda del usuario (storeID opcional).
	StockSummaryByStore(ctx context.Context, ownerID, storeID string) ([]StoreStockSummary, error)
}
