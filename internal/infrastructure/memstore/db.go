// Package memstore implementa los puertos de persistencia en memoria. Se usa en pruebas y con
// STORAGE_DRIVER=memory. Las transacciones se serializan con un mutex global: Run trabaja sobre
// una copia del estado y solo la publica si fn termina sin error.
package memstore

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

var _ inventory.TxRunner = (*DB)(nil)

type stockKey struct {
	storeID string
	itemID  string
}

type state struct {
	users   map[string]string
	items   map[string]entity.InventoryItem
	changes []entity.InventoryChange
	stores  map[string]entity.Store
	stock   map[stockKey]entity.StoreInventory
	alerts  []entity.InventoryAlert
}

func newState() *state {
	return &state{
		users:  map[string]string{},
		items:  map[string]entity.InventoryItem{},
		stores: map[string]entity.Store{},
		stock:  map[stockKey]entity.StoreInventory{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.stores {
		c.stores[k] = v
	}
	for k, v := range s.stock {
		c.stock[k] = v
	}
	c.changes = append(c.changes, s.changes...)
	c.alerts = append(c.alerts, s.alerts...)
	return c
}

// DB base de datos en memoria.
type DB struct {
	mu sync.RWMutex
	st *state
}

// New crea una base vacía.
func New() *DB {
	return &DB{st: newState()}
}

// Run ejecuta fn con repositorios sobre una copia del estado; si fn no falla la copia
// reemplaza al estado publicado. Mientras corre, ninguna otra transacción ni escritura avanza.
func (db *DB) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	work := db.st.clone()
	v := view{db: db, tx: work}
	repos := inventory.TxRepos{
		Items:      &ItemRepo{v},
		Changes:    &ChangeRepo{v},
		Stores:     &StoreRepo{v},
		StoreStock: &StoreInventoryRepo{v},
		Alerts:     &AlertRepo{v},
	}
	if err := fn(repos); err != nil {
		return err
	}
	db.st = work
	return nil
}

// Users repositorio de usuarios.
func (db *DB) Users() *UserRepo { return &UserRepo{view{db: db}} }

// Items repositorio de artículos fuera de transacción.
func (db *DB) Items() *ItemRepo { return &ItemRepo{view{db: db}} }

// Changes repositorio del libro fuera de transacción.
func (db *DB) Changes() *ChangeRepo { return &ChangeRepo{view{db: db}} }

// Stores repositorio de tiendas fuera de transacción.
func (db *DB) Stores() *StoreRepo { return &StoreRepo{view{db: db}} }

// StoreStock repositorio de stock por tienda fuera de transacción.
func (db *DB) StoreStock() *StoreInventoryRepo { return &StoreInventoryRepo{view{db: db}} }

// Alerts repositorio de alertas fuera de transacción.
func (db *DB) Alerts() *AlertRepo { return &AlertRepo{view{db: db}} }

// Reports repositorio de reportes.
func (db *DB) Reports() *ReportRepo { return &ReportRepo{view{db: db}} }

// view da acceso al estado: el de la transacción si existe (el lock ya lo tiene Run),
// o el publicado tomando el lock correspondiente.
type view struct {
	db *DB
	tx *state
}

func (v view) read(fn func(s *state)) {
	if v.tx != nil {
		fn(v.tx)
		return
	}
	v.db.mu.RLock()
	defer v.db.mu.RUnlock()
	fn(v.db.st)
}

func (v view) write(fn func(s *state) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.db.mu.Lock()
	defer v.db.mu.Unlock()
	return fn(v.db.st)
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
