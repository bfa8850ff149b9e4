package entities

import "time"

type Grow struct {
	GrowID              uint       `gorm:"primaryKey" json:"grow_id"`
	UserID              string     `json:"user_id" gorm:"index"`
	Name                string     `json:"name"`
	StrainID            *uint      `json:"strain_id" gorm:"index"`
	CultureID           *uint      `json:"culture_id" gorm:"index"`
	Substrate           string     `json:"substrate"`
	SubstrateDryWeightG *float64   `json:"substrate_dry_weight_g"`
	Container           string     `json:"container"`
	Stage               string     `json:"stage" gorm:"index"`
	InoculatedAt        time.Time  `json:"inoculated_at"`
	ColonizedAt         *time.Time `json:"colonized_at"`
	FruitingAt          *time.Time `json:"fruiting_at"`
	CompletedAt         *time.Time `json:"completed_at"`
	StageChangedAt      time.Time  `json:"stage_changed_at"`
	Notes               string     `json:"notes"`
	ArchivedAt          *time.Time `json:"archived_at" gorm:"index"`

	Flushes []Flush `json:"flushes,omitempty" gorm:"foreignKey:GrowID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Flush is one harvest recorded against a grow.
type Flush struct {
	FlushID     uint      `gorm:"primaryKey" json:"flush_id"`
	GrowID      uint      `json:"grow_id" gorm:"index"`
	Number      int       `json:"number"`
	HarvestedAt time.Time `json:"harvested_at"`
	WetWeightG  float64   `json:"wet_weight_g"`
	DryWeightG  *float64  `json:"dry_weight_g"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type GrowStageEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GrowID    uint      `json:"grow_id" gorm:"index"`
	FromStage string    `json:"from_stage"`
	ToStage   string    `json:"to_stage"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
