package service

import "mycolab/entities"

type SuggestionService interface {
	Submit(uid string, in SuggestionInput) (*entities.Suggestion, error)
	Mine(uid string) ([]entities.Suggestion, error)
	Withdraw(uid string, id uint) error

	Queue(status string) ([]entities.Suggestion, error)
	Approve(reviewer string, id uint, in ReviewInput) (*entities.Suggestion, error)
	Reject(reviewer string, id uint, in ReviewInput) (*entities.Suggestion, error)
}

type SuggestionInput struct {
	Kind                   string `json:"kind" validate:"required,oneof=new_species new_strain correction"`
	SpeciesID              *uint  `json:"species_id"`
	StrainID               *uint  `json:"strain_id"`
	ProposedName           string `json:"proposed_name" validate:"max=120"`
	ProposedScientificName string `json:"proposed_scientific_name" validate:"max=160"`
	ProposedDescription    string `json:"proposed_description" validate:"max=20000"`
	Rationale              string `json:"rationale" validate:"max=2000"`
}

type ReviewInput struct {
	Note string `json:"note" validate:"max=2000"`
}
