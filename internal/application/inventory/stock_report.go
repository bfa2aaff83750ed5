package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// StockReport resumen de stock de las tiendas de un usuario.
type StockReport struct {
	GeneratedAt         time.Time
	StoreID             string // vacío = todas las tiendas
	TotalItems          int
	TotalValue          decimal.Decimal
	LowStockItems       int
	ItemsNeedingReorder int
	Stores              []repository.StoreStockSummary
}

// StockReportUseCase arma el reporte de stock (totales y desglose por tienda).
type StockReportUseCase struct {
	reportRepo repository.ReportRepository
	storeRepo  repository.StoreRepository
	pdf        StockReportPDFGenerator
	now        func() time.Time
}

// NewStockReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta a PDF.
func NewStockReportUseCase(
	reportRepo repository.ReportRepository,
	storeRepo repository.StoreRepository,
	pdf StockReportPDFGenerator,
) *StockReportUseCase {
	return &StockReportUseCase{
		reportRepo: reportRepo,
		storeRepo:  storeRepo,
		pdf:        pdf,
		now:        time.Now,
	}
}

// GenerateStockReport calcula el reporte. Si storeID no está vacío, la tienda debe pertenecer al actor.
func (uc *StockReportUseCase) GenerateStockReport(ctx context.Context, actorID, storeID string) (*StockReport, error) {
	if storeID != "" {
		store, err := uc.storeRepo.GetByID(ctx, storeID)
		if err != nil {
			return nil, err
		}
		if !store.OwnedBy(actorID) {
			return nil, domain.ErrNotFound
		}
	}

	summaries, err := uc.reportRepo.StockSummaryByStore(ctx, actorID, storeID)
	if err != nil {
		return nil, err
	}

	report := &StockReport{
		GeneratedAt: uc.now(),
		StoreID:     storeID,
		TotalValue:  decimal.Zero,
		Stores:      summaries,
	}
	for _, s := range summaries {
		report.TotalItems += s.TotalItems
		report.TotalValue = report.TotalValue.Add(s.TotalValue)
		report.LowStockItems += s.LowStockItems
		report.ItemsNeedingReorder += s.ItemsNeedingReorder
	}

	// Desglose: primero las tiendas con más artículos en stock bajo, luego por nombre.
	sort.SliceStable(report.Stores, func(i, j int) bool {
		a, b := report.Stores[i], report.Stores[j]
		if a.LowStockItems != b.LowStockItems {
			return a.LowStockItems > b.LowStockItems
		}
		return a.StoreName < b.StoreName
	})
	return report, nil
}

// GenerateStockReportPDF genera el reporte y lo renderiza a PDF.
func (uc *StockReportUseCase) GenerateStockReportPDF(ctx context.Context, actorID, storeID string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrNotFound
	}
	report, err := uc.GenerateStockReport(ctx, actorID, storeID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReportPDF(ctx, report)
}
