package service

import "mycolab/entities"

type InventoryService interface {
	Create(uid string, in ItemInput) (*entities.InventoryItem, error)
	Get(uid string, id uint) (*entities.InventoryItem, error)
	List(uid, category string, includeArchived bool) ([]entities.InventoryItem, error)
	Update(uid string, id uint, patch ItemPatch) (*entities.InventoryItem, error)
	Delete(uid string, id uint) error
	Archive(uid string, id uint) (*entities.InventoryItem, error)
	Adjust(uid string, id uint, in AdjustInput) (*entities.InventoryItem, error)
	LowStock(uid string) ([]entities.InventoryItem, error)
}

type ItemInput struct {
	Name         string   `json:"name" validate:"required,max=120"`
	Category     string   `json:"category" validate:"omitempty,oneof=substrate grain supplies equipment spawn other"`
	Quantity     float64  `json:"quantity" validate:"gte=0"`
	Unit         string   `json:"unit" validate:"max=20"`
	ReorderPoint *float64 `json:"reorder_point" validate:"omitempty,gte=0"`
	CostCents    *int64   `json:"cost_cents" validate:"omitempty,gte=0"`
	Supplier     string   `json:"supplier" validate:"max=120"`
	ExpiresAt    *string  `json:"expires_at"`
	Notes        string   `json:"notes"`
}

type ItemPatch struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=120"`
	Category     *string  `json:"category" validate:"omitempty,oneof=substrate grain supplies equipment spawn other"`
	Quantity     *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit         *string  `json:"unit" validate:"omitempty,max=20"`
	ReorderPoint *float64 `json:"reorder_point" validate:"omitempty,gte=0"`
	CostCents    *int64   `json:"cost_cents" validate:"omitempty,gte=0"`
	Supplier     *string  `json:"supplier"`
	ExpiresAt    *string  `json:"expires_at"`
	Notes        *string  `json:"notes"`
}

type AdjustInput struct {
	Delta  float64 `json:"delta" validate:"ne=0"`
	Reason string  `json:"reason" validate:"max=200"`
}

// IsLow reports whether the item is at or below its reorder point.
func IsLow(it entities.InventoryItem) bool {
	return it.ReorderPoint != nil && it.Quantity <= *it.ReorderPoint
}
