package inventory

import (
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// AlertCandidate alerta que debe existir abierta para un registro de stock.
type AlertCandidate struct {
	AlertType string
	Message   string
}

// AlertCandidates evalúa ambos predicados (stock bajo y reorden) de forma independiente.
// El orden del resultado es fijo: LOW_STOCK antes que REORDER.
func AlertCandidates(si *entity.StoreInventory, itemName, storeName string) []AlertCandidate {
	var out []AlertCandidate
	if si.IsLowStock() {
		out = append(out, AlertCandidate{
			AlertType: entity.AlertTypeLowStock,
			Message: fmt.Sprintf("Stock bajo de %s en %s. Cantidad actual: %d",
				itemName, storeName, si.Quantity),
		})
	}
	if si.NeedsReorder() {
		out = append(out, AlertCandidate{
			AlertType: entity.AlertTypeReorder,
			Message: fmt.Sprintf("Reorden sugerido de %s en %s. Cantidad sugerida: %d",
				itemName, storeName, si.ReorderQuantity),
		})
	}
	return out
}
