package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"mycolab/database"
	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/suggestion/repository"
)

type suggestionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SuggestionRepository { return &suggestionRepo{db} }

func (r *suggestionRepo) Create(s *entities.Suggestion) error {
	return database.Wrap(r.db.Create(s).Error, "create suggestion")
}

func (r *suggestionRepo) Save(s *entities.Suggestion) error {
	return database.Wrap(r.db.Save(s).Error, "save suggestion")
}

func (r *suggestionRepo) FindByID(id uint) (*entities.Suggestion, error) {
	var s entities.Suggestion
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, database.Wrap(err, "suggestion")
	}
	return &s, nil
}

func (r *suggestionRepo) ListBySubmitter(uid string) ([]entities.Suggestion, error) {
	var out []entities.Suggestion
	if err := r.db.Where("submitter_id = ?", uid).Order("created_at DESC, suggestion_id DESC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list suggestions")
	}
	return out, nil
}

func (r *suggestionRepo) Queue(status string) ([]entities.Suggestion, error) {
	q := r.db.Model(&entities.Suggestion{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []entities.Suggestion
	err := q.Order("CASE WHEN status = '" + entities.SuggestionPending + "' THEN 0 ELSE 1 END").
		Order("created_at ASC, suggestion_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, database.Wrap(err, "suggestion queue")
	}
	return out, nil
}

func (r *suggestionRepo) Claim(id uint, status, reviewer, note string, at time.Time) (bool, error) {
	res := r.db.Model(&entities.Suggestion{}).
		Where("suggestion_id = ? AND status = ?", id, entities.SuggestionPending).
		Updates(map[string]any{"status": status, "reviewer_id": reviewer, "review_note": note, "reviewed_at": at})
	if res.Error != nil {
		return false, database.Wrap(res.Error, "claim suggestion")
	}
	return res.RowsAffected == 1, nil
}

func (r *suggestionRepo) Release(id uint) error {
	err := r.db.Model(&entities.Suggestion{}).Where("suggestion_id = ?", id).
		Updates(map[string]any{"status": entities.SuggestionPending, "reviewer_id": "", "review_note": "", "reviewed_at": nil}).Error
	return database.Wrap(err, "release suggestion")
}

func (r *suggestionRepo) DeletePending(id uint, uid string) error {
	var s entities.Suggestion
	if err := r.db.Where("suggestion_id = ? AND submitter_id = ?", id, uid).First(&s).Error; err != nil {
		return database.Wrap(err, "suggestion")
	}
	if s.Status != entities.SuggestionPending {
		return apperr.ErrConflict
	}
	return database.Wrap(r.db.Delete(&s).Error, "delete suggestion")
}
