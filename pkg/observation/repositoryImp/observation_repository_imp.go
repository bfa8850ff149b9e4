package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"mycolab/database"
	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/observation/repository"
)

type observationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ObservationRepository { return &observationRepo{db} }

func (r *observationRepo) Create(o *entities.Observation) error {
	return database.Wrap(r.db.Create(o).Error, "create observation")
}

func (r *observationRepo) Save(o *entities.Observation) error {
	return database.Wrap(r.db.Save(o).Error, "save observation")
}

func (r *observationRepo) FindByID(id uint, uid string) (*entities.Observation, error) {
	var o entities.Observation
	if err := r.db.Where("observation_id = ? AND user_id = ?", id, uid).First(&o).Error; err != nil {
		return nil, database.Wrap(err, "observation")
	}
	return &o, nil
}

func (r *observationRepo) List(uid string, f repository.ObservationFilter) ([]entities.Observation, error) {
	q := r.db.Where("user_id = ?", uid)
	if f.GrowID != nil {
		q = q.Where("grow_id = ?", *f.GrowID)
	}
	if f.CultureID != nil {
		q = q.Where("culture_id = ?", *f.CultureID)
	}
	if f.Kind != "" {
		q = q.Where("kind = ?", f.Kind)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var out []entities.Observation
	if err := q.Order("observed_at DESC, observation_id DESC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list observations")
	}
	return out, nil
}

func (r *observationRepo) Delete(id uint, uid string) error {
	res := r.db.Where("observation_id = ? AND user_id = ?", id, uid).Delete(&entities.Observation{})
	if res.Error != nil {
		return database.Wrap(res.Error, "delete observation")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("observation")
	}
	return nil
}

func (r *observationRepo) LatestPerGrow(uid string) (map[uint]time.Time, error) {
	// newest row per grow, fetched whole so the driver decodes observed_at as time
	var rows []entities.Observation
	err := r.db.Select("grow_id, observed_at").
		Where("user_id = ? AND grow_id IS NOT NULL", uid).
		Order("observed_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, database.Wrap(err, "latest observations")
	}
	out := make(map[uint]time.Time, len(rows))
	for _, o := range rows {
		if o.GrowID == nil {
			continue
		}
		if _, seen := out[*o.GrowID]; !seen {
			out[*o.GrowID] = o.ObservedAt
		}
	}
	return out, nil
}
