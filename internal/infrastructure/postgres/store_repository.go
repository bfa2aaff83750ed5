package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

const storeColumns = `id, owner_id, name, address, contact_number, email, is_active, created_at, updated_at`

// StoreRepo implementación de StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una tienda.
func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	query := `
		INSERT INTO stores (` + storeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.OwnerID, s.Name, s.Address, s.ContactNumber, s.Email, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	return translate("insert store", err)
}

// GetByID obtiene una tienda. Devuelve nil, nil si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	s, err := scanStore(r.q.QueryRow(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, translate("get store", err)
	}
	return s, nil
}

// ListByOwner lista las tiendas del usuario por nombre.
func (r *StoreRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE owner_id = $1 ORDER BY name, id LIMIT $2 OFFSET $3`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, translate("list stores", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanStore(row rowScanner) (*entity.Store, error) {
	var s entity.Store
	if err := row.Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Address, &s.ContactNumber, &s.Email, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
