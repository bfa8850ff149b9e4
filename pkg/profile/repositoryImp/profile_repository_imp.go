package repositoryImp

import (
	"gorm.io/gorm"

	"mycolab/database"
	"mycolab/entities"
	"mycolab/pkg/profile/repository"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) FirstOrCreateProfile(def entities.UserProfile) (*entities.UserProfile, error) {
	var p entities.UserProfile
	err := r.db.Where(entities.UserProfile{UserID: def.UserID}).Attrs(def).FirstOrCreate(&p).Error
	if err != nil {
		return nil, database.Wrap(err, "load profile")
	}
	return &p, nil
}

func (r *profileRepo) SaveProfile(p *entities.UserProfile) error {
	return database.Wrap(r.db.Save(p).Error, "save profile")
}

func (r *profileRepo) ListAdmins() ([]entities.UserProfile, error) {
	var out []entities.UserProfile
	if err := r.db.Where("is_admin = ?", true).Order("user_id ASC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list admins")
	}
	return out, nil
}

func (r *profileRepo) FirstOrCreateSettings(def entities.AppSettings) (*entities.AppSettings, error) {
	var s entities.AppSettings
	err := r.db.Where(entities.AppSettings{UserID: def.UserID}).Attrs(def).FirstOrCreate(&s).Error
	if err != nil {
		return nil, database.Wrap(err, "load settings")
	}
	return &s, nil
}

func (r *profileRepo) SaveSettings(s *entities.AppSettings) error {
	return database.Wrap(r.db.Save(s).Error, "save settings")
}
