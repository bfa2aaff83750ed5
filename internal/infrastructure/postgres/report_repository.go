package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de stock por tienda.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// StockSummaryByStore agrega el stock de cada tienda del dueño (storeID vacío = todas).
func (r *ReportRepo) StockSummaryByStore(ctx context.Context, ownerID, storeID string) ([]repository.StoreStockSummary, error) {
	query := `
		SELECT s.id, s.name,
		       COUNT(si.id),
		       COALESCE(SUM(si.quantity * i.price), 0),
		       COUNT(si.id) FILTER (WHERE si.quantity <= si.low_stock_threshold),
		       COUNT(si.id) FILTER (WHERE si.quantity <= si.reorder_point)
		FROM stores s
		LEFT JOIN store_inventory si ON si.store_id = s.id
		LEFT JOIN inventory_items i ON i.id = si.item_id
		WHERE s.owner_id = $1 AND ($2::text = '' OR s.id::text = $2)
		GROUP BY s.id, s.name
		ORDER BY s.name`
	rows, err := r.q.Query(ctx, query, ownerID, storeID)
	if err != nil {
		return nil, translate("stock summary", err)
	}
	defer rows.Close()
	var list []repository.StoreStockSummary
	for rows.Next() {
		var s repository.StoreStockSummary
		if err := rows.Scan(&s.StoreID, &s.StoreName, &s.TotalItems, &s.TotalValue, &s.LowStockItems, &s.ItemsNeedingReorder); err != nil {
			return nil, fmt.Errorf("scan stock summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
