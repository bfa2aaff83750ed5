package entity

import "time"

// Store representa una tienda física de un usuario.
type Store struct {
	ID            string
	OwnerID       string
	Name          string
	Address       string
	ContactNumber string
	Email         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OwnedBy indica si la tienda pertenece al usuario.
func (s *Store) OwnedBy(userID string) bool {
	return s != nil && userID != "" && s.OwnerID == userID
}
