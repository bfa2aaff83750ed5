package inventory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Items      repository.InventoryItemRepository
	Changes    repository.InventoryChangeRepository
	Stores     repository.StoreRepository
	StoreStock repository.StoreInventoryRepository
	Alerts     repository.InventoryAlertRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad del libro y las cantidades: si fn devuelve error nada se persiste.
// Si la BD reporta un fallo de serialización o deadlock, Run devuelve domain.ErrConflict.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// StockReportPDFGenerator genera la representación PDF del reporte de stock.
type StockReportPDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, report *StockReport) ([]byte, error)
}
