package repository

import "mycolab/entities"

type LibraryRepository interface {
	CreateSpecies(s *entities.Species) error
	SaveSpecies(s *entities.Species) error
	FindSpecies(id uint) (*entities.Species, error)
	FindSpeciesBySlug(slug string) (*entities.Species, error)
	ListSpecies(q string) ([]entities.Species, error)
	DeleteSpecies(id uint) error
	CountStrains(speciesID uint) (int64, error)

	CreateStrain(s *entities.Strain) error
	SaveStrain(s *entities.Strain) error
	FindStrain(id uint) (*entities.Strain, error)
	ListStrains(speciesID *uint, q string) ([]entities.Strain, error)
	DeleteStrain(id uint) error

	// SlugExists reports whether slug is used in table by a row other than exceptID.
	SlugExists(table, slug string, exceptID uint) (bool, error)
}
