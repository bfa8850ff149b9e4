package service

import "mycolab/entities"

type CultureService interface {
	Create(uid string, in CultureInput) (*entities.Culture, error)
	Get(uid string, id uint) (*entities.Culture, error)
	List(uid string, includeArchived bool) ([]entities.Culture, error)
	Update(uid string, id uint, patch CulturePatch) (*entities.Culture, error)
	Archive(uid string, id uint) (*entities.Culture, error)
	Unarchive(uid string, id uint) (*entities.Culture, error)
	Delete(uid string, id uint) error
	Transfer(uid string, parentID uint, in TransferInput) (*entities.Culture, error)
}

type CultureInput struct {
	Label           string  `json:"label" validate:"required,max=120"`
	Type            string  `json:"type" validate:"omitempty,oneof=agar liquid slant spore_syringe grain"`
	SpeciesID       *uint   `json:"species_id"`
	StrainID        *uint   `json:"strain_id"`
	Source          string  `json:"source" validate:"max=200"`
	PreparedAt      string  `json:"prepared_at"`
	ExpiresAt       *string `json:"expires_at"`
	StorageLocation string  `json:"storage_location" validate:"max=120"`
	Notes           string  `json:"notes"`
}

type CulturePatch struct {
	Label           *string `json:"label" validate:"omitempty,min=1,max=120"`
	Type            *string `json:"type" validate:"omitempty,oneof=agar liquid slant spore_syringe grain"`
	SpeciesID       *uint   `json:"species_id"`
	StrainID        *uint   `json:"strain_id"`
	Source          *string `json:"source"`
	Status          *string `json:"status" validate:"omitempty,oneof=active contaminated used"`
	PreparedAt      *string `json:"prepared_at"`
	ExpiresAt       *string `json:"expires_at"`
	StorageLocation *string `json:"storage_location"`
	Notes           *string `json:"notes"`
}

// TransferInput describes the child culture made from a parent.
type TransferInput struct {
	Label           string `json:"label" validate:"required,max=120"`
	Type            string `json:"type" validate:"omitempty,oneof=agar liquid slant spore_syringe grain"`
	PreparedAt      string `json:"prepared_at"`
	StorageLocation string `json:"storage_location"`
	Notes           string `json:"notes"`
}
