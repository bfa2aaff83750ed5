package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0,00"},
		{"999", "999,00"},
		{"25000", "25.000,00"},
		{"1234567.5", "1.234.567,50"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestGenerateStockReportPDF(t *testing.T) {
	report := &inventory.StockReport{
		GeneratedAt:         time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		TotalItems:          3,
		TotalValue:          decimal.NewFromInt(1500),
		LowStockItems:       1,
		ItemsNeedingReorder: 2,
		Stores: []repository.StoreStockSummary{
			{StoreID: "s1", StoreName: "Centro", TotalItems: 2, TotalValue: decimal.NewFromInt(1000), LowStockItems: 1, ItemsNeedingReorder: 1},
			{StoreID: "s2", StoreName: "Norte", TotalItems: 1, TotalValue: decimal.NewFromInt(500), ItemsNeedingReorder: 1},
		},
	}

	out, err := NewMarotoPDFGenerator("inventario-ledger").GenerateStockReportPDF(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
