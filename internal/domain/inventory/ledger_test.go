package inventory_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

func TestNewChange_Salida(t *testing.T) {
	now := time.Now()
	ch, err := inventory.NewChange("item-1", 15, -10, "user-1", "venta", now)
	require.NoError(t, err)

	assert.Equal(t, entity.ChangeTypeRemove, ch.ChangeType)
	assert.Equal(t, 15, ch.PreviousQuantity)
	assert.Equal(t, 5, ch.NewQuantity)
	assert.Equal(t, -10, ch.QuantityChange)
	require.NotNil(t, ch.ChangedBy)
	assert.Equal(t, "user-1", *ch.ChangedBy)
	assert.Equal(t, now, ch.Timestamp)
	assert.NotEmpty(t, ch.ID)
}

func TestNewChange_Entrada(t *testing.T) {
	ch, err := inventory.NewChange("item-1", 0, 7, "user-1", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.ChangeTypeAdd, ch.ChangeType)
	assert.Equal(t, 7, ch.NewQuantity)
}

func TestNewChange_Rechazos(t *testing.T) {
	cases := []struct {
		name     string
		previous int
		delta    int
		want     error
	}{
		{"delta cero", 5, 0, domain.ErrZeroDelta},
		{"delta cero con stock cero", 0, 0, domain.ErrZeroDelta},
		{"quedaría negativo", 5, -10, domain.ErrInsufficientStock},
		{"quedaría en -1", 0, -1, domain.ErrInsufficientStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ch, err := inventory.NewChange("item-1", tc.previous, tc.delta, "user-1", "", time.Now())
			assert.Nil(t, ch)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewChange_QuedaEnCero(t *testing.T) {
	ch, err := inventory.NewChange("item-1", 5, -5, "", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, ch.NewQuantity)
	assert.Nil(t, ch.ChangedBy, "sin actor el asiento queda con changed_by nulo")
}

func TestNewCorrection(t *testing.T) {
	ch, err := inventory.NewCorrection("item-1", 12, 4, "user-1", "conteo físico", time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.ChangeTypeAdjust, ch.ChangeType)
	assert.Equal(t, -8, ch.QuantityChange)
	assert.Equal(t, ch.PreviousQuantity+ch.QuantityChange, ch.NewQuantity)

	_, err = inventory.NewCorrection("item-1", 12, 12, "user-1", "", time.Now())
	assert.ErrorIs(t, err, domain.ErrZeroDelta)

	_, err = inventory.NewCorrection("item-1", 12, -1, "user-1", "", time.Now())
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "new_quantity", vErr.Fields[0].Field)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyDelta_Limites(t *testing.T) {
	cases := []struct {
		name     string
		previous int
		delta    int
		want     int
		field    string
	}{
		{"llega justo al máximo", inventory.MaxQuantity - 1, 1, inventory.MaxQuantity, ""},
		{"supera el máximo", inventory.MaxQuantity - 1, 2, 0, "quantity_change"},
		{"delta enorme positivo", 5, math.MaxInt, 0, "quantity_change"},
		{"delta mayor que int4", 5, 3_000_000_000, 0, "quantity_change"},
		{"delta enorme negativo", 5, math.MinInt, 0, "quantity_change"},
		{"retira todo el máximo", inventory.MaxQuantity, -inventory.MaxQuantity, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inventory.ApplyDelta(tc.previous, tc.delta)
			if tc.field == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Fields[0].Field)
			assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
		})
	}
}

func TestNewCorrection_SuperaMaximo(t *testing.T) {
	_, err := inventory.NewCorrection("item-1", 0, inventory.MaxQuantity+1, "user-1", "", time.Now())
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "new_quantity", vErr.Fields[0].Field)
}
