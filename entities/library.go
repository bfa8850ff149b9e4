package entities

import "time"

type Species struct {
	SpeciesID      uint      `gorm:"primaryKey" json:"species_id"`
	Name           string    `json:"name"`
	ScientificName string    `json:"scientific_name" gorm:"index"`
	Slug           string    `json:"slug" gorm:"uniqueIndex"`
	Description    string    `json:"description"`
	SourceURL      string    `json:"source_url"`
	Strains        []Strain  `json:"strains,omitempty" gorm:"foreignKey:SpeciesID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Species) TableName() string { return "species" }

type Strain struct {
	StrainID         uint      `gorm:"primaryKey" json:"strain_id"`
	SpeciesID        uint      `json:"species_id" gorm:"index"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug" gorm:"uniqueIndex"`
	Description      string    `json:"description"`
	ColonizationDays *int      `json:"colonization_days"`
	FruitingDays     *int      `json:"fruiting_days"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
