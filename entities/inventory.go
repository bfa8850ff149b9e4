package entities

import "time"

type InventoryItem struct {
	ItemID       uint       `gorm:"primaryKey" json:"item_id"`
	UserID       string     `json:"user_id" gorm:"index"`
	Name         string     `json:"name"`
	Category     string     `json:"category" gorm:"index"` // substrate|grain|supplies|equipment|spawn|other
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	ReorderPoint *float64   `json:"reorder_point"`
	CostCents    *int64     `json:"cost_cents"`
	Supplier     string     `json:"supplier"`
	ExpiresAt    *time.Time `json:"expires_at"`
	Notes        string     `json:"notes"`
	ArchivedAt   *time.Time `json:"archived_at" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
