package serviceImp

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/dates"
	repo "mycolab/pkg/inventory/repository"
	"mycolab/pkg/inventory/service"
	"mycolab/pkg/validate"
)

type inventorySvc struct {
	r     repo.InventoryRepository
	zones dates.Zones
	now   func() time.Time
}

func NewInventoryService(r repo.InventoryRepository, zones dates.Zones) service.InventoryService {
	if zones == nil {
		zones = dates.Fixed(nil)
	}
	return &inventorySvc{r: r, zones: zones, now: time.Now}
}

func (s *inventorySvc) Create(uid string, in service.ItemInput) (*entities.InventoryItem, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	expires, err := dates.ParsePtr(in.ExpiresAt, s.zones.Location(uid))
	if err != nil {
		return nil, err
	}
	cat := in.Category
	if cat == "" {
		cat = "other"
	}
	it := &entities.InventoryItem{
		UserID:       uid,
		Name:         strings.TrimSpace(in.Name),
		Category:     cat,
		Quantity:     in.Quantity,
		Unit:         strings.TrimSpace(in.Unit),
		ReorderPoint: in.ReorderPoint,
		CostCents:    in.CostCents,
		Supplier:     strings.TrimSpace(in.Supplier),
		ExpiresAt:    expires,
		Notes:        in.Notes,
	}
	if err := s.r.Create(it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *inventorySvc) Get(uid string, id uint) (*entities.InventoryItem, error) {
	return s.r.FindByID(id, uid)
}

func (s *inventorySvc) List(uid, category string, includeArchived bool) ([]entities.InventoryItem, error) {
	return s.r.List(uid, category, includeArchived)
}

func (s *inventorySvc) Update(uid string, id uint, p service.ItemPatch) (*entities.InventoryItem, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}
	it, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		it.Name = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		it.Unit = strings.TrimSpace(*p.Unit)
	}
	if p.ReorderPoint != nil {
		it.ReorderPoint = p.ReorderPoint
	}
	if p.CostCents != nil {
		it.CostCents = p.CostCents
	}
	if p.Supplier != nil {
		it.Supplier = strings.TrimSpace(*p.Supplier)
	}
	if p.ExpiresAt != nil {
		if it.ExpiresAt, err = dates.ParsePtr(p.ExpiresAt, s.zones.Location(uid)); err != nil {
			return nil, err
		}
	}
	if p.Notes != nil {
		it.Notes = *p.Notes
	}
	if err := s.r.Save(it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *inventorySvc) Delete(uid string, id uint) error { return s.r.Delete(id, uid) }

func (s *inventorySvc) Archive(uid string, id uint) (*entities.InventoryItem, error) {
	it, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if it.ArchivedAt == nil {
		now := s.now()
		it.ArchivedAt = &now
		if err := s.r.Save(it); err != nil {
			return nil, err
		}
	}
	return it, nil
}

// Adjust adds delta to the stock; the quantity never drops below zero.
func (s *inventorySvc) Adjust(uid string, id uint, in service.AdjustInput) (*entities.InventoryItem, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	it, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	ok, err := s.r.AddQuantity(id, uid, in.Delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Invalid("only %s %s of %s left", fmt.Sprint(it.Quantity), it.Unit, it.Name)
	}
	slog.Debug("inventory adjusted", "item_id", id, "delta", in.Delta, "reason", in.Reason)
	return s.r.FindByID(id, uid)
}

// LowStock lists active items at or below their reorder point.
func (s *inventorySvc) LowStock(uid string) ([]entities.InventoryItem, error) {
	items, err := s.r.List(uid, "", false)
	if err != nil {
		return nil, err
	}
	out := []entities.InventoryItem{}
	for _, it := range items {
		if service.IsLow(it) {
			out = append(out, it)
		}
	}
	return out, nil
}
