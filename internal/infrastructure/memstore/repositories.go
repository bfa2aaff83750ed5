package memstore

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.InventoryItemRepository   = (*ItemRepo)(nil)
	_ repository.InventoryChangeRepository = (*ChangeRepo)(nil)
	_ repository.StoreRepository           = (*StoreRepo)(nil)
	_ repository.StoreInventoryRepository  = (*StoreInventoryRepo)(nil)
	_ repository.InventoryAlertRepository  = (*AlertRepo)(nil)
	_ repository.ReportRepository          = (*ReportRepo)(nil)
	_ repository.UserRepository            = (*UserRepo)(nil)
)

// UserRepo usuarios en memoria.
type UserRepo struct{ v view }

func (r *UserRepo) EnsureExists(_ context.Context, id, username string) error {
	return r.v.write(func(s *state) error {
		if _, ok := s.users[id]; !ok {
			s.users[id] = username
		}
		return nil
	})
}

// ItemRepo artículos en memoria.
type ItemRepo struct{ v view }

func (r *ItemRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	return r.v.write(func(s *state) error {
		if _, ok := s.items[item.ID]; ok {
			return domain.ErrDuplicate
		}
		s.items[item.ID] = *item
		return nil
	})
}

func (r *ItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	r.v.read(func(s *state) {
		if it, ok := s.items[id]; ok {
			out = &it
		}
	})
	return out, nil
}

// GetForUpdate equivale a GetByID: el lock global de Run ya serializa las transacciones.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	return r.v.write(func(s *state) error {
		it, ok := s.items[id]
		if !ok {
			return domain.ErrNotFound
		}
		it.Quantity = quantity
		it.UpdatedAt = time.Now()
		s.items[id] = it
		return nil
	})
}

func (r *ItemRepo) List(_ context.Context, f repository.ItemFilter) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	r.v.read(func(s *state) {
		for _, it := range s.items {
			if it.OwnerID != f.OwnerID {
				continue
			}
			if f.CategoryID != "" && (it.CategoryID == nil || *it.CategoryID != f.CategoryID) {
				continue
			}
			if f.MinPrice != nil && it.Price.LessThan(*f.MinPrice) {
				continue
			}
			if f.MaxPrice != nil && it.Price.GreaterThan(*f.MaxPrice) {
				continue
			}
			if f.LowStock != nil && it.Quantity > *f.LowStock {
				continue
			}
			if f.Search != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(f.Search)) {
				continue
			}
			it := it
			list = append(list, &it)
		}
	})
	less, err := itemLess(f.Ordering)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if c := less(list[i], list[j]); c != 0 {
			return c < 0
		}
		return list[i].ID < list[j].ID
	})
	return paginate(list, f.Limit, f.Offset), nil
}

// itemLess devuelve un comparador de tres vías para el ordering dado.
func itemLess(ordering string) (func(a, b *entity.InventoryItem) int, error) {
	if ordering == "" {
		return func(a, b *entity.InventoryItem) int { return -a.CreatedAt.Compare(b.CreatedAt) }, nil
	}
	field, sign := ordering, 1
	if strings.HasPrefix(field, "-") {
		field, sign = field[1:], -1
	}
	var cmp func(a, b *entity.InventoryItem) int
	switch field {
	case "name":
		cmp = func(a, b *entity.InventoryItem) int { return strings.Compare(a.Name, b.Name) }
	case "price":
		cmp = func(a, b *entity.InventoryItem) int { return a.Price.Cmp(b.Price) }
	case "quantity":
		cmp = func(a, b *entity.InventoryItem) int { return a.Quantity - b.Quantity }
	case "created_at":
		cmp = func(a, b *entity.InventoryItem) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default:
		return nil, domain.NewValidationError("ordering", "campo no permitido")
	}
	return func(a, b *entity.InventoryItem) int { return sign * cmp(a, b) }, nil
}

// ChangeRepo libro en memoria, solo inserción y lectura.
type ChangeRepo struct{ v view }

func (r *ChangeRepo) Create(_ context.Context, c *entity.InventoryChange) error {
	return r.v.write(func(s *state) error {
		if _, ok := s.items[c.ItemID]; !ok {
			return domain.ErrNotFound
		}
		s.changes = append(s.changes, *c)
		return nil
	})
}

func (r *ChangeRepo) GetByID(_ context.Context, id string) (*entity.InventoryChange, error) {
	var out *entity.InventoryChange
	r.v.read(func(s *state) {
		for _, c := range s.changes {
			if c.ID == id {
				c := c
				out = &c
				return
			}
		}
	})
	return out, nil
}

// List conserva el orden de inserción entre asientos con el mismo timestamp.
func (r *ChangeRepo) List(_ context.Context, f repository.ChangeFilter) ([]*entity.InventoryChange, error) {
	var list []*entity.InventoryChange
	r.v.read(func(s *state) {
		for _, c := range s.changes {
			it, ok := s.items[c.ItemID]
			if !ok || it.OwnerID != f.OwnerID {
				continue
			}
			if f.ItemID != "" && c.ItemID != f.ItemID {
				continue
			}
			if f.ChangeType != "" && c.ChangeType != f.ChangeType {
				continue
			}
			c := c
			list = append(list, &c)
		}
	})
	if !f.Ascending {
		for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
			list[i], list[j] = list[j], list[i]
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if f.Ascending {
			return list[i].Timestamp.Before(list[j].Timestamp)
		}
		return list[i].Timestamp.After(list[j].Timestamp)
	})
	return paginate(list, f.Limit, f.Offset), nil
}

// StoreRepo tiendas en memoria.
type StoreRepo struct{ v view }

func (r *StoreRepo) Create(_ context.Context, st *entity.Store) error {
	return r.v.write(func(s *state) error {
		if _, ok := s.stores[st.ID]; ok {
			return domain.ErrDuplicate
		}
		s.stores[st.ID] = *st
		return nil
	})
}

func (r *StoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	var out *entity.Store
	r.v.read(func(s *state) {
		if st, ok := s.stores[id]; ok {
			out = &st
		}
	})
	return out, nil
}

func (r *StoreRepo) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*entity.Store, error) {
	var list []*entity.Store
	r.v.read(func(s *state) {
		for _, st := range s.stores {
			if st.OwnerID == ownerID {
				st := st
				list = append(list, &st)
			}
		}
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return paginate(list, limit, offset), nil
}

// StoreInventoryRepo stock por tienda en memoria.
type StoreInventoryRepo struct{ v view }

func (r *StoreInventoryRepo) Get(_ context.Context, storeID, itemID string) (*entity.StoreInventory, error) {
	var out *entity.StoreInventory
	r.v.read(func(s *state) {
		if si, ok := s.stock[stockKey{storeID, itemID}]; ok {
			out = &si
		}
	})
	return out, nil
}

func (r *StoreInventoryRepo) CreateIfAbsent(_ context.Context, si *entity.StoreInventory) error {
	return r.v.write(func(s *state) error {
		if _, ok := s.stores[si.StoreID]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := s.items[si.ItemID]; !ok {
			return domain.ErrNotFound
		}
		key := stockKey{si.StoreID, si.ItemID}
		if _, ok := s.stock[key]; !ok {
			s.stock[key] = *si
		}
		return nil
	})
}

func (r *StoreInventoryRepo) GetForUpdate(ctx context.Context, storeID, itemID string) (*entity.StoreInventory, error) {
	return r.Get(ctx, storeID, itemID)
}

func (r *StoreInventoryRepo) Save(_ context.Context, si *entity.StoreInventory) error {
	return r.v.write(func(s *state) error {
		if _, ok := s.stores[si.StoreID]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := s.items[si.ItemID]; !ok {
			return domain.ErrNotFound
		}
		key := stockKey{si.StoreID, si.ItemID}
		if prev, ok := s.stock[key]; ok {
			si.ID = prev.ID
		}
		s.stock[key] = *si
		return nil
	})
}

func (r *StoreInventoryRepo) ListByStore(_ context.Context, storeID string) ([]*entity.StoreInventory, error) {
	var list []*entity.StoreInventory
	r.v.read(func(s *state) {
		for _, si := range s.stock {
			if si.StoreID == storeID {
				si := si
				list = append(list, &si)
			}
		}
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].UpdatedAt.Equal(list[j].UpdatedAt) {
			return list[i].UpdatedAt.After(list[j].UpdatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// AlertRepo alertas en memoria.
type AlertRepo struct{ v view }

func (r *AlertRepo) CreateIfAbsent(_ context.Context, alert *entity.InventoryAlert) (*entity.InventoryAlert, bool, error) {
	var (
		out     entity.InventoryAlert
		created bool
	)
	err := r.v.write(func(s *state) error {
		for _, a := range s.alerts {
			if !a.IsResolved && a.StoreID == alert.StoreID && a.ItemID == alert.ItemID && a.AlertType == alert.AlertType {
				out = a
				return nil
			}
		}
		out = *alert
		out.IsResolved = false
		out.ResolvedAt = nil
		s.alerts = append(s.alerts, out)
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

func (r *AlertRepo) GetByID(_ context.Context, id string) (*entity.InventoryAlert, error) {
	var out *entity.InventoryAlert
	r.v.read(func(s *state) {
		for _, a := range s.alerts {
			if a.ID == id {
				a := a
				out = &a
				return
			}
		}
	})
	return out, nil
}

func (r *AlertRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryAlert, error) {
	return r.GetByID(ctx, id)
}

func (r *AlertRepo) MarkResolved(_ context.Context, id string, resolvedAt time.Time) error {
	return r.v.write(func(s *state) error {
		for i := range s.alerts {
			if s.alerts[i].ID != id {
				continue
			}
			if !s.alerts[i].IsResolved {
				at := resolvedAt
				s.alerts[i].IsResolved = true
				s.alerts[i].ResolvedAt = &at
			}
			return nil
		}
		return domain.ErrNotFound
	})
}

func (r *AlertRepo) List(_ context.Context, f repository.AlertFilter) ([]*entity.InventoryAlert, error) {
	var list []*entity.InventoryAlert
	r.v.read(func(s *state) {
		for i := len(s.alerts) - 1; i >= 0; i-- {
			a := s.alerts[i]
			st, ok := s.stores[a.StoreID]
			if !ok || st.OwnerID != f.OwnerID {
				continue
			}
			if f.StoreID != "" && a.StoreID != f.StoreID {
				continue
			}
			if f.ItemID != "" && a.ItemID != f.ItemID {
				continue
			}
			if f.AlertType != "" && a.AlertType != f.AlertType {
				continue
			}
			if f.Resolved != nil && a.IsResolved != *f.Resolved {
				continue
			}
			list = append(list, &a)
		}
	})
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return paginate(list, f.Limit, f.Offset), nil
}

// ReportRepo agregados de stock en memoria.
type ReportRepo struct{ v view }

func (r *ReportRepo) StockSummaryByStore(_ context.Context, ownerID, storeID string) ([]repository.StoreStockSummary, error) {
	var list []repository.StoreStockSummary
	r.v.read(func(s *state) {
		for _, st := range s.stores {
			if st.OwnerID != ownerID || (storeID != "" && st.ID != storeID) {
				continue
			}
			sum := repository.StoreStockSummary{StoreID: st.ID, StoreName: st.Name, TotalValue: decimal.Zero}
			for _, si := range s.stock {
				if si.StoreID != st.ID {
					continue
				}
				sum.TotalItems++
				if it, ok := s.items[si.ItemID]; ok {
					sum.TotalValue = sum.TotalValue.Add(it.Price.Mul(decimal.NewFromInt(int64(si.Quantity))))
				}
				if si.IsLowStock() {
					sum.LowStockItems++
				}
				if si.NeedsReorder() {
					sum.ItemsNeedingReorder++
				}
			}
			list = append(list, sum)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].StoreName < list[j].StoreName })
	return list, nil
}
