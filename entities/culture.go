package entities

import "time"

type Culture struct {
	CultureID       uint       `gorm:"primaryKey" json:"culture_id"`
	UserID          string     `json:"user_id" gorm:"index"`
	Label           string     `json:"label"`
	Type            string     `json:"type"` // agar|liquid|slant|spore_syringe|grain
	SpeciesID       *uint      `json:"species_id" gorm:"index"`
	StrainID        *uint      `json:"strain_id" gorm:"index"`
	ParentID        *uint      `json:"parent_id" gorm:"index"`
	Generation      int        `json:"generation"`
	Source          string     `json:"source"`
	Status          string     `json:"status"` // active|contaminated|used|archived
	PreparedAt      time.Time  `json:"prepared_at"`
	LastTransferAt  *time.Time `json:"last_transfer_at"`
	ExpiresAt       *time.Time `json:"expires_at"`
	StorageLocation string     `json:"storage_location"`
	Notes           string     `json:"notes"`
	ArchivedAt      *time.Time `json:"archived_at" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	CultureActive       = "active"
	CultureContaminated = "contaminated"
	CultureUsed         = "used"
	CultureArchived     = "archived"
)
