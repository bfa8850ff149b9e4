package repository

import "mycolab/entities"

type InventoryRepository interface {
	Create(it *entities.InventoryItem) error
	Save(it *entities.InventoryItem) error
	FindByID(id uint, uid string) (*entities.InventoryItem, error)
	List(uid, category string, includeArchived bool) ([]entities.InventoryItem, error)
	Delete(id uint, uid string) error
	// AddQuantity applies delta atomically unless the result would go negative.
	AddQuantity(id uint, uid string, delta float64) (bool, error)
}
