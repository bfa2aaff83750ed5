package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.StoreInventoryRepository = (*StoreInventoryRepo)(nil)

const storeInventoryColumns = `id, store_id, item_id, quantity, low_stock_threshold, reorder_point, reorder_quantity, updated_at`

// StoreInventoryRepo stock por (tienda, artículo) sobre PostgreSQL.
type StoreInventoryRepo struct {
	q Querier
}

// NewStoreInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreInventoryRepository(q Querier) *StoreInventoryRepo {
	return &StoreInventoryRepo{q: q}
}

// Get obtiene el registro del par. Devuelve nil, nil si no existe.
func (r *StoreInventoryRepo) Get(ctx context.Context, storeID, itemID string) (*entity.StoreInventory, error) {
	return r.get(ctx, `SELECT `+storeInventoryColumns+` FROM store_inventory WHERE store_id = $1 AND item_id = $2`, storeID, itemID)
}

// CreateIfAbsent inserta el registro con sus valores actuales salvo que el par ya exista.
// Dos tx concurrentes sobre un par nuevo quedan serializadas en el índice único.
func (r *StoreInventoryRepo) CreateIfAbsent(ctx context.Context, si *entity.StoreInventory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO store_inventory (`+storeInventoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (store_id, item_id) DO NOTHING`,
		si.ID, si.StoreID, si.ItemID, si.Quantity, si.LowStockThreshold, si.ReorderPoint,
		si.ReorderQuantity, si.UpdatedAt,
	)
	return translate("create store inventory", err)
}

// GetForUpdate obtiene el registro bloqueando la fila.
func (r *StoreInventoryRepo) GetForUpdate(ctx context.Context, storeID, itemID string) (*entity.StoreInventory, error) {
	return r.get(ctx, `SELECT `+storeInventoryColumns+` FROM store_inventory WHERE store_id = $1 AND item_id = $2 FOR UPDATE`, storeID, itemID)
}

func (r *StoreInventoryRepo) get(ctx context.Context, query, storeID, itemID string) (*entity.StoreInventory, error) {
	si, err := scanStoreInventory(r.q.QueryRow(ctx, query, storeID, itemID))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, translate("get store inventory", err)
	}
	return si, nil
}

// Save inserta o actualiza (upsert sobre el único store_id+item_id) conservando el ID existente.
// Las escrituras del caso de uso llegan siempre con la fila ya bloqueada por GetForUpdate.
func (r *StoreInventoryRepo) Save(ctx context.Context, si *entity.StoreInventory) error {
	query := `
		INSERT INTO store_inventory (` + storeInventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (store_id, item_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			reorder_point = EXCLUDED.reorder_point,
			reorder_quantity = EXCLUDED.reorder_quantity,
			updated_at = EXCLUDED.updated_at
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		si.ID, si.StoreID, si.ItemID, si.Quantity, si.LowStockThreshold, si.ReorderPoint,
		si.ReorderQuantity, si.UpdatedAt,
	).Scan(&si.ID)
	return translate("save store inventory", err)
}

// ListByStore lista el stock de una tienda.
func (r *StoreInventoryRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.StoreInventory, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+storeInventoryColumns+` FROM store_inventory WHERE store_id = $1 ORDER BY updated_at DESC, id`,
		storeID,
	)
	if err != nil {
		return nil, translate("list store inventory", err)
	}
	defer rows.Close()
	var list []*entity.StoreInventory
	for rows.Next() {
		si, err := scanStoreInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store inventory: %w", err)
		}
		list = append(list, si)
	}
	return list, rows.Err()
}

func scanStoreInventory(row rowScanner) (*entity.StoreInventory, error) {
	var si entity.StoreInventory
	if err := row.Scan(
		&si.ID, &si.StoreID, &si.ItemID, &si.Quantity, &si.LowStockThreshold, &si.ReorderPoint,
		&si.ReorderQuantity, &si.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &si, nil
}
