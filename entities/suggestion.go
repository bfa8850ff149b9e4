package entities

import "time"

type Suggestion struct {
	SuggestionID           uint       `gorm:"primaryKey" json:"suggestion_id"`
	SubmitterID            string     `json:"submitter_id" gorm:"index"`
	Kind                   string     `json:"kind"` // new_species|new_strain|correction
	SpeciesID              *uint      `json:"species_id"`
	StrainID               *uint      `json:"strain_id"`
	ProposedName           string     `json:"proposed_name"`
	ProposedScientificName string     `json:"proposed_scientific_name"`
	ProposedDescription    string     `json:"proposed_description"`
	Rationale              string     `json:"rationale"`
	Status                 string     `json:"status" gorm:"index"` // pending|approved|rejected
	ReviewerID             string     `json:"reviewer_id"`
	ReviewNote             string     `json:"review_note"`
	ReviewedAt             *time.Time `json:"reviewed_at"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

const (
	SuggestionNewSpecies = "new_species"
	SuggestionNewStrain  = "new_strain"
	SuggestionCorrection = "correction"

	SuggestionPending  = "pending"
	SuggestionApproved = "approved"
	SuggestionRejected = "rejected"
)
