package postgres

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// EnsureExists inserta el usuario si no existe. No modifica filas existentes.
func (r *UserRepo) EnsureExists(ctx context.Context, id, username string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO users (id, username) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		id, username,
	)
	return translate("ensure user", err)
}
