package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.InventoryAlertRepository = (*InventoryAlertRepo)(nil)

const alertColumns = `a.id, a.store_id, a.item_id, a.alert_type, a.message, a.is_resolved, a.created_at, a.resolved_at`

// InventoryAlertRepo alertas de inventario sobre PostgreSQL.
type InventoryAlertRepo struct {
	q Querier
}

// NewInventoryAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryAlertRepository(q Querier) *InventoryAlertRepo {
	return &InventoryAlertRepo{q: q}
}

// CreateIfAbsent inserta la alerta salvo que exista una abierta para (tienda, artículo, tipo).
// El índice único parcial uq_inventory_alerts_open hace atómica la comprobación. Si la alerta
// que bloqueó el INSERT se resuelve antes de leerla, se reintenta el INSERT una vez.
func (r *InventoryAlertRepo) CreateIfAbsent(ctx context.Context, alert *entity.InventoryAlert) (*entity.InventoryAlert, bool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		created, err := r.insertOpen(ctx, alert)
		if err == nil {
			return created, true, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, false, translate("insert inventory alert", err)
		}

		existing, err := scanAlert(r.q.QueryRow(ctx, `
			SELECT `+alertColumns+` FROM inventory_alerts a
			WHERE a.store_id = $1 AND a.item_id = $2 AND a.alert_type = $3 AND NOT a.is_resolved`,
			alert.StoreID, alert.ItemID, alert.AlertType,
		))
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, false, translate("get open inventory alert", err)
		}
	}
	return nil, false, fmt.Errorf("create inventory alert %s/%s/%s: %w", alert.StoreID, alert.ItemID, alert.AlertType, domain.ErrConflict)
}

func (r *InventoryAlertRepo) insertOpen(ctx context.Context, alert *entity.InventoryAlert) (*entity.InventoryAlert, error) {
	return scanAlert(r.q.QueryRow(ctx, `
		INSERT INTO inventory_alerts AS a (id, store_id, item_id, alert_type, message, is_resolved, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, NULL)
		ON CONFLICT (store_id, item_id, alert_type) WHERE NOT is_resolved DO NOTHING
		RETURNING `+alertColumns,
		alert.ID, alert.StoreID, alert.ItemID, alert.AlertType, alert.Message, alert.CreatedAt,
	))
}

// GetByID obtiene una alerta. Devuelve nil, nil si no existe.
func (r *InventoryAlertRepo) GetByID(ctx context.Context, id string) (*entity.InventoryAlert, error) {
	return r.get(ctx, `SELECT `+alertColumns+` FROM inventory_alerts a WHERE a.id = $1`, id)
}

// GetForUpdate obtiene la alerta bloqueando su fila.
func (r *InventoryAlertRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryAlert, error) {
	return r.get(ctx, `SELECT `+alertColumns+` FROM inventory_alerts a WHERE a.id = $1 FOR UPDATE`, id)
}

func (r *InventoryAlertRepo) get(ctx context.Context, query, id string) (*entity.InventoryAlert, error) {
	a, err := scanAlert(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, translate("get inventory alert", err)
	}
	return a, nil
}

// MarkResolved cierra la alerta. No modifica una ya resuelta (conserva su resolved_at).
func (r *InventoryAlertRepo) MarkResolved(ctx context.Context, id string, resolvedAt time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory_alerts SET is_resolved = TRUE, resolved_at = $2 WHERE id = $1 AND NOT is_resolved`,
		id, resolvedAt,
	)
	return translate("resolve inventory alert", err)
}

// List alertas de las tiendas del dueño, más recientes primero.
func (r *InventoryAlertRepo) List(ctx context.Context, f repository.AlertFilter) ([]*entity.InventoryAlert, error) {
	where := []string{"s.owner_id = $1"}
	args := []any{f.OwnerID}
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.StoreID != "" {
		add("a.store_id::text = $%d", f.StoreID)
	}
	if f.ItemID != "" {
		add("a.item_id::text = $%d", f.ItemID)
	}
	if f.AlertType != "" {
		add("a.alert_type = $%d", f.AlertType)
	}
	if f.Resolved != nil {
		add("a.is_resolved = $%d", *f.Resolved)
	}
	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM inventory_alerts a
		JOIN stores s ON s.id = a.store_id
		WHERE %s
		ORDER BY a.created_at DESC, a.id
		LIMIT $%d OFFSET $%d`,
		alertColumns, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translate("list inventory alerts", err)
	}
	defer rows.Close()
	var list []*entity.InventoryAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanAlert(row rowScanner) (*entity.InventoryAlert, error) {
	var a entity.InventoryAlert
	if err := row.Scan(
		&a.ID, &a.StoreID, &a.ItemID, &a.AlertType, &a.Message, &a.IsResolved, &a.CreatedAt, &a.ResolvedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
