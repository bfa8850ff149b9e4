package repositoryImp

import (
	"gorm.io/gorm"

	"mycolab/database"
	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/grow/repository"
)

type growRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GrowRepository { return &growRepo{db} }

func (r *growRepo) WithTx(fn func(repository.GrowRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error { return fn(&growRepo{tx}) })
}

func (r *growRepo) Create(g *entities.Grow) error {
	return database.Wrap(r.db.Create(g).Error, "create grow")
}

func (r *growRepo) Save(g *entities.Grow) error {
	return database.Wrap(r.db.Omit("Flushes").Save(g).Error, "save grow")
}

func (r *growRepo) FindByID(id uint, uid string) (*entities.Grow, error) {
	var g entities.Grow
	if err := r.db.Where("grow_id = ? AND user_id = ?", id, uid).First(&g).Error; err != nil {
		return nil, database.Wrap(err, "grow")
	}
	return &g, nil
}

func (r *growRepo) List(uid string, f repository.GrowFilter) ([]entities.Grow, error) {
	q := r.db.Where("user_id = ?", uid)
	if f.Stage != "" {
		q = q.Where("stage = ?", f.Stage)
	}
	if !f.IncludeArchived {
		q = q.Where("archived_at IS NULL")
	}
	var out []entities.Grow
	if err := q.Order("inoculated_at DESC, grow_id DESC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list grows")
	}
	return out, nil
}

func (r *growRepo) Delete(id uint, uid string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("grow_id = ? AND user_id = ?", id, uid).Delete(&entities.Grow{})
		if res.Error != nil {
			return database.Wrap(res.Error, "delete grow")
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("grow")
		}
		if err := tx.Where("grow_id = ?", id).Delete(&entities.Flush{}).Error; err != nil {
			return database.Wrap(err, "delete flushes")
		}
		return database.Wrap(tx.Where("grow_id = ?", id).Delete(&entities.GrowStageEvent{}).Error, "delete stage events")
	})
}

func (r *growRepo) AddEvent(ev *entities.GrowStageEvent) error {
	return database.Wrap(r.db.Create(ev).Error, "create stage event")
}

func (r *growRepo) Events(growID uint) ([]entities.GrowStageEvent, error) {
	var out []entities.GrowStageEvent
	if err := r.db.Where("grow_id = ?", growID).Order("created_at ASC, id ASC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list stage events")
	}
	return out, nil
}

func (r *growRepo) CreateFlush(f *entities.Flush) error {
	return database.Wrap(r.db.Create(f).Error, "create flush")
}

func (r *growRepo) Flushes(growID uint) ([]entities.Flush, error) {
	var out []entities.Flush
	if err := r.db.Where("grow_id = ?", growID).Order("number ASC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list flushes")
	}
	return out, nil
}

func (r *growRepo) FlushesFor(growIDs []uint) ([]entities.Flush, error) {
	var out []entities.Flush
	if len(growIDs) == 0 {
		return out, nil
	}
	if err := r.db.Where("grow_id IN ?", growIDs).Order("grow_id ASC, number ASC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list flushes")
	}
	return out, nil
}

func (r *growRepo) MaxFlushNumber(growID uint) (int, error) {
	var n int
	err := r.db.Model(&entities.Flush{}).Where("grow_id = ?", growID).
		Select("COALESCE(MAX(number), 0)").Scan(&n).Error
	return n, database.Wrap(err, "max flush number")
}

func (r *growRepo) FindFlush(flushID uint, uid string) (*entities.Flush, error) {
	var f entities.Flush
	err := r.db.Joins("JOIN grows ON grows.grow_id = flushes.grow_id").
		Where("flushes.flush_id = ? AND grows.user_id = ?", flushID, uid).
		First(&f).Error
	if err != nil {
		return nil, database.Wrap(err, "flush")
	}
	return &f, nil
}

func (r *growRepo) DeleteFlush(flushID uint) error {
	return database.Wrap(r.db.Delete(&entities.Flush{}, flushID).Error, "delete flush")
}
