package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, owner_id, name, description, quantity, price, category_id, supplier_id, created_at, updated_at`

// InventoryItemRepo implementación de InventoryItemRepository sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un artículo nuevo con la cantidad que traiga la entidad.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.OwnerID, item.Name, item.Description, item.Quantity, item.Price,
		item.CategoryID, item.SupplierID, item.CreatedAt, item.UpdatedAt,
	)
	return translate("insert inventory item", err)
}

// GetByID obtiene un artículo. Devuelve nil, nil si no existe.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.get(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id)
}

// GetForUpdate obtiene el artículo bloqueando su fila hasta el fin de la transacción.
func (r *InventoryItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.get(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, id)
}

func (r *InventoryItemRepo) get(ctx context.Context, query, id string) (*entity.InventoryItem, error) {
	item, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, translate("get inventory item", err)
	}
	return item, nil
}

// UpdateQuantity fija la cantidad del artículo. Solo la usa el mutador de stock.
func (r *InventoryItemRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory_items SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	return translate("update inventory item quantity", err)
}

// List lista los artículos del dueño aplicando los filtros opcionales.
func (r *InventoryItemRepo) List(ctx context.Context, f repository.ItemFilter) ([]*entity.InventoryItem, error) {
	where := []string{"owner_id = $1"}
	args := []any{f.OwnerID}
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.CategoryID != "" {
		add("category_id::text = $%d", f.CategoryID)
	}
	if f.MinPrice != nil {
		add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("price <= $%d", *f.MaxPrice)
	}
	if f.LowStock != nil {
		add("quantity <= $%d", *f.LowStock)
	}
	if f.Search != "" {
		add(`name ILIKE $%d ESCAPE '\'`, "%"+likeEscaper.Replace(f.Search)+"%")
	}
	order, err := itemOrderBy(f.Ordering)
	if err != nil {
		return nil, err
	}
	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT %s FROM inventory_items
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		itemColumns, strings.Join(where, " AND "), order, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translate("list inventory items", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// itemOrderBy traduce el ordering pedido a una cláusula fija; nunca interpola la entrada.
func itemOrderBy(ordering string) (string, error) {
	if ordering == "" {
		return "created_at DESC, id", nil
	}
	field, dir := ordering, "ASC"
	if strings.HasPrefix(field, "-") {
		field, dir = field[1:], "DESC"
	}
	for _, allowed := range repository.ItemOrderings {
		if field == allowed {
			return field + " " + dir + ", id", nil
		}
	}
	return "", domain.NewValidationError("ordering", "campo no permitido")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	if err := row.Scan(
		&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Quantity, &it.Price,
		&it.CategoryID, &it.SupplierID, &it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &it, nil
}
