package repositoryImp

import (
	"gorm.io/gorm"

	"mycolab/database"
	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/culture/repository"
)

type cultureRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CultureRepository { return &cultureRepo{db} }

func (r *cultureRepo) WithTx(fn func(repository.CultureRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error { return fn(&cultureRepo{tx}) })
}

func (r *cultureRepo) Create(c *entities.Culture) error {
	return database.Wrap(r.db.Create(c).Error, "create culture")
}

func (r *cultureRepo) Save(c *entities.Culture) error {
	return database.Wrap(r.db.Save(c).Error, "save culture")
}

func (r *cultureRepo) FindByID(id uint, uid string) (*entities.Culture, error) {
	var c entities.Culture
	if err := r.db.Where("culture_id = ? AND user_id = ?", id, uid).First(&c).Error; err != nil {
		return nil, database.Wrap(err, "culture")
	}
	return &c, nil
}

func (r *cultureRepo) List(uid string, includeArchived bool) ([]entities.Culture, error) {
	q := r.db.Where("user_id = ?", uid)
	if !includeArchived {
		q = q.Where("archived_at IS NULL")
	}
	var out []entities.Culture
	if err := q.Order("prepared_at DESC, culture_id DESC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list cultures")
	}
	return out, nil
}

func (r *cultureRepo) Delete(id uint, uid string) error {
	res := r.db.Where("culture_id = ? AND user_id = ?", id, uid).Delete(&entities.Culture{})
	if res.Error != nil {
		return database.Wrap(res.Error, "delete culture")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("culture")
	}
	return nil
}
