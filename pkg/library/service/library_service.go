package service

import (
	"context"

	"mycolab/entities"
)

type LibraryService interface {
	ListSpecies(q string) ([]entities.Species, error)
	GetSpecies(id uint) (*entities.Species, error)
	CreateSpecies(in SpeciesInput) (*entities.Species, error)
	UpdateSpecies(id uint, in SpeciesInput) (*entities.Species, error)
	DeleteSpecies(id uint) error

	ListStrains(speciesID *uint, q string) ([]entities.Strain, error)
	GetStrain(id uint) (*entities.Strain, error)
	CreateStrain(in StrainInput) (*entities.Strain, error)
	UpdateStrain(id uint, in StrainInput) (*entities.Strain, error)
	DeleteStrain(id uint) error

	ImportSpecies(ctx context.Context, in ImportInput) (*entities.Species, error)
}

type SpeciesInput struct {
	Name           string `json:"name" validate:"required,max=120"`
	ScientificName string `json:"scientific_name" validate:"max=160"`
	Description    string `json:"description"`
	SourceURL      string `json:"source_url" validate:"omitempty,url"`
}

type StrainInput struct {
	SpeciesID        uint   `json:"species_id" validate:"required"`
	Name             string `json:"name" validate:"required,max=120"`
	Description      string `json:"description"`
	ColonizationDays *int   `json:"colonization_days" validate:"omitempty,gt=0,lte=365"`
	FruitingDays     *int   `json:"fruiting_days" validate:"omitempty,gt=0,lte=365"`
}

// ImportInput names the page to import. With SpeciesID the page updates that
// species; otherwise the species is matched by slug or created.
type ImportInput struct {
	URL            string `json:"url" validate:"required,url"`
	SpeciesID      *uint  `json:"species_id"`
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`
}
