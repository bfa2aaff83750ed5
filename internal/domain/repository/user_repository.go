package repository

import "context"

// UserRepository registro mínimo de usuarios. La identidad la emite el servicio de
// autenticación; aquí solo se asegura la fila que referencian owner_id y changed_by.
type UserRepository interface {
	EnsureExists(ctx context.Context, id, username string) error
}
