package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.InventoryChangeRepository = (*InventoryChangeRepo)(nil)

const changeColumns = `c.id, c.item_id, c.change_type, c.quantity_change, c.previous_quantity, c.new_quantity, c.changed_by, c.timestamp, c.notes`

// InventoryChangeRepo libro de movimientos sobre PostgreSQL. Solo inserta y lee.
type InventoryChangeRepo struct {
	q Querier
}

// NewInventoryChangeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryChangeRepository(q Querier) *InventoryChangeRepo {
	return &InventoryChangeRepo{q: q}
}

// Create inserta un asiento.
func (r *InventoryChangeRepo) Create(ctx context.Context, c *entity.InventoryChange) error {
	query := `
		INSERT INTO inventory_changes (id, item_id, change_type, quantity_change, previous_quantity, new_quantity, changed_by, timestamp, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.ItemID, c.ChangeType, c.QuantityChange, c.PreviousQuantity, c.NewQuantity,
		c.ChangedBy, c.Timestamp, c.Notes,
	)
	return translate("insert inventory change", err)
}

// GetByID obtiene un asiento. Devuelve nil, nil si no existe.
func (r *InventoryChangeRepo) GetByID(ctx context.Context, id string) (*entity.InventoryChange, error) {
	c, err := scanChange(r.q.QueryRow(ctx, `SELECT `+changeColumns+` FROM inventory_changes c WHERE c.id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, translate("get inventory change", err)
	}
	return c, nil
}

// List asientos de artículos del dueño, por timestamp (desc salvo Ascending).
func (r *InventoryChangeRepo) List(ctx context.Context, f repository.ChangeFilter) ([]*entity.InventoryChange, error) {
	where := []string{"i.owner_id = $1"}
	args := []any{f.OwnerID}
	if f.ItemID != "" {
		args = append(args, f.ItemID)
		where = append(where, fmt.Sprintf("c.item_id::text = $%d", len(args)))
	}
	if f.ChangeType != "" {
		args = append(args, f.ChangeType)
		where = append(where, fmt.Sprintf("c.change_type = $%d", len(args)))
	}
	order := "DESC"
	if f.Ascending {
		order = "ASC"
	}
	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM inventory_changes c
		JOIN inventory_items i ON i.id = c.item_id
		WHERE %s
		ORDER BY c.timestamp %s, c.id %s
		LIMIT $%d OFFSET $%d`,
		changeColumns, strings.Join(where, " AND "), order, order, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translate("list inventory changes", err)
	}
	defer rows.Close()
	var list []*entity.InventoryChange
	for rows.Next() {
		c, err := scanChange(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory change: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanChange(row rowScanner) (*entity.InventoryChange, error) {
	var c entity.InventoryChange
	if err := row.Scan(
		&c.ID, &c.ItemID, &c.ChangeType, &c.QuantityChange, &c.PreviousQuantity, &c.NewQuantity,
		&c.ChangedBy, &c.Timestamp, &c.Notes,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
