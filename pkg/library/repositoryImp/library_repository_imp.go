package repositoryImp

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"mycolab/database"
	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/library/repository"
)

type libraryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LibraryRepository { return &libraryRepo{db} }

func like(q string) string { return "%" + strings.ToLower(strings.TrimSpace(q)) + "%" }

func (r *libraryRepo) CreateSpecies(s *entities.Species) error {
	return database.Wrap(r.db.Omit("Strains").Create(s).Error, "create species")
}

func (r *libraryRepo) SaveSpecies(s *entities.Species) error {
	return database.Wrap(r.db.Omit("Strains").Save(s).Error, "save species")
}

func (r *libraryRepo) FindSpecies(id uint) (*entities.Species, error) {
	var s entities.Species
	err := r.db.Preload("Strains", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		First(&s, id).Error
	if err != nil {
		return nil, database.Wrap(err, "species")
	}
	return &s, nil
}

func (r *libraryRepo) FindSpeciesBySlug(slug string) (*entities.Species, error) {
	var s entities.Species
	if err := r.db.Where("slug = ?", slug).First(&s).Error; err != nil {
		return nil, database.Wrap(err, "species")
	}
	return &s, nil
}

func (r *libraryRepo) ListSpecies(q string) ([]entities.Species, error) {
	tx := r.db.Model(&entities.Species{})
	if strings.TrimSpace(q) != "" {
		p := like(q)
		tx = tx.Where("lower(name) LIKE ? OR lower(scientific_name) LIKE ? OR slug LIKE ?", p, p, p)
	}
	var out []entities.Species
	if err := tx.Order("name ASC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list species")
	}
	return out, nil
}

func (r *libraryRepo) DeleteSpecies(id uint) error {
	res := r.db.Delete(&entities.Species{}, id)
	if res.Error != nil {
		return database.Wrap(res.Error, "delete species")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("species")
	}
	return nil
}

func (r *libraryRepo) CountStrains(speciesID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entities.Strain{}).Where("species_id = ?", speciesID).Count(&n).Error
	return n, database.Wrap(err, "count strains")
}

func (r *libraryRepo) CreateStrain(s *entities.Strain) error {
	return database.Wrap(r.db.Create(s).Error, "create strain")
}

func (r *libraryRepo) SaveStrain(s *entities.Strain) error {
	return database.Wrap(r.db.Save(s).Error, "save strain")
}

func (r *libraryRepo) FindStrain(id uint) (*entities.Strain, error) {
	var s entities.Strain
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, database.Wrap(err, "strain")
	}
	return &s, nil
}

func (r *libraryRepo) ListStrains(speciesID *uint, q string) ([]entities.Strain, error) {
	tx := r.db.Model(&entities.Strain{})
	if speciesID != nil {
		tx = tx.Where("species_id = ?", *speciesID)
	}
	if strings.TrimSpace(q) != "" {
		p := like(q)
		tx = tx.Where("lower(name) LIKE ? OR slug LIKE ?", p, p)
	}
	var out []entities.Strain
	if err := tx.Order("name ASC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list strains")
	}
	return out, nil
}

func (r *libraryRepo) DeleteStrain(id uint) error {
	res := r.db.Delete(&entities.Strain{}, id)
	if res.Error != nil {
		return database.Wrap(res.Error, "delete strain")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("strain")
	}
	return nil
}

func (r *libraryRepo) SlugExists(table, slug string, exceptID uint) (bool, error) {
	var model any
	var pk string
	switch table {
	case "species":
		model, pk = &entities.Species{}, "species_id"
	case "strains":
		model, pk = &entities.Strain{}, "strain_id"
	default:
		return false, fmt.Errorf("unknown slug table %q", table)
	}
	var n int64
	err := r.db.Model(model).Where("slug = ? AND "+pk+" <> ?", slug, exceptID).Count(&n).Error
	return n > 0, database.Wrap(err, "check slug")
}
