package repositoryImp

import (
	"gorm.io/gorm"

	"mycolab/database"
	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/inventory/repository"
)

type inventoryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &inventoryRepo{db} }

func (r *inventoryRepo) Create(it *entities.InventoryItem) error {
	return database.Wrap(r.db.Create(it).Error, "create inventory item")
}

func (r *inventoryRepo) Save(it *entities.InventoryItem) error {
	return database.Wrap(r.db.Save(it).Error, "save inventory item")
}

func (r *inventoryRepo) FindByID(id uint, uid string) (*entities.InventoryItem, error) {
	var it entities.InventoryItem
	if err := r.db.Where("item_id = ? AND user_id = ?", id, uid).First(&it).Error; err != nil {
		return nil, database.Wrap(err, "inventory item")
	}
	return &it, nil
}

func (r *inventoryRepo) List(uid, category string, includeArchived bool) ([]entities.InventoryItem, error) {
	q := r.db.Where("user_id = ?", uid)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if !includeArchived {
		q = q.Where("archived_at IS NULL")
	}
	var out []entities.InventoryItem
	if err := q.Order("category ASC, name ASC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list inventory")
	}
	return out, nil
}

func (r *inventoryRepo) Delete(id uint, uid string) error {
	res := r.db.Where("item_id = ? AND user_id = ?", id, uid).Delete(&entities.InventoryItem{})
	if res.Error != nil {
		return database.Wrap(res.Error, "delete inventory item")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("inventory item")
	}
	return nil
}

func (r *inventoryRepo) AddQuantity(id uint, uid string, delta float64) (bool, error) {
	res := r.db.Model(&entities.InventoryItem{}).
		Where("item_id = ? AND user_id = ? AND quantity + ? >= 0", id, uid, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return false, database.Wrap(res.Error, "adjust inventory")
	}
	return res.RowsAffected == 1, nil
}
