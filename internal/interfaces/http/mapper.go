package http

import (
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

func toChangeResponse(c *entity.InventoryChange) dto.InventoryChangeResponse {
	return dto.InventoryChangeResponse{
		ID:               c.ID,
		ItemID:           c.ItemID,
		ChangeType:       c.ChangeType,
		QuantityChange:   c.QuantityChange,
		PreviousQuantity: c.PreviousQuantity,
		NewQuantity:      c.NewQuantity,
		ChangedBy:        c.ChangedBy,
		Timestamp:        c.Timestamp,
		Notes:            c.Notes,
	}
}

func toStoreInventoryResponse(si *entity.StoreInventory) dto.StoreInventoryResponse {
	return dto.StoreInventoryResponse{
		ID:                si.ID,
		StoreID:           si.StoreID,
		ItemID:            si.ItemID,
		Quantity:          si.Quantity,
		LowStockThreshold: si.LowStockThreshold,
		ReorderPoint:      si.ReorderPoint,
		ReorderQuantity:   si.ReorderQuantity,
		IsLowStock:        si.IsLowStock(),
		NeedsReorder:      si.NeedsReorder(),
		UpdatedAt:         si.UpdatedAt,
	}
}

func toAlertResponse(a *entity.InventoryAlert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:         a.ID,
		StoreID:    a.StoreID,
		ItemID:     a.ItemID,
		AlertType:  a.AlertType,
		Message:    a.Message,
		IsResolved: a.IsResolved,
		CreatedAt:  a.CreatedAt,
		ResolvedAt: a.ResolvedAt,
	}
}

func toAlertResponses(list []*entity.InventoryAlert) []dto.AlertResponse {
	out := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAlertResponse(a))
	}
	return out
}

func toStockReportDTO(r *inventory.StockReport) dto.StockReportDTO {
	out := dto.StockReportDTO{
		GeneratedAt:         r.GeneratedAt,
		TotalItems:          r.TotalItems,
		TotalValue:          r.TotalValue,
		LowStockItems:       r.LowStockItems,
		ItemsNeedingReorder: r.ItemsNeedingReorder,
		StoreBreakdown:      make([]dto.StoreBreakdownDTO, 0, len(r.Stores)),
	}
	for _, s := range r.Stores {
		out.StoreBreakdown = append(out.StoreBreakdown, dto.StoreBreakdownDTO{
			StoreID:             s.StoreID,
			StoreName:           s.StoreName,
			TotalItems:          s.TotalItems,
			TotalValue:          s.TotalValue,
			LowStockItems:       s.LowStockItems,
			ItemsNeedingReorder: s.ItemsNeedingReorder,
		})
	}
	return out
}
