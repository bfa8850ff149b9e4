package service

import (
	"mycolab/entities"
	"mycolab/pkg/lifecycle"
)

type GrowService interface {
	Create(uid string, in GrowInput) (*entities.Grow, error)
	Get(uid string, id uint) (*entities.Grow, error)
	List(uid string, stage string, includeArchived bool) ([]entities.Grow, error)
	Update(uid string, id uint, patch GrowPatch) (*entities.Grow, error)
	Delete(uid string, id uint) error
	Archive(uid string, id uint) (*entities.Grow, error)
	Unarchive(uid string, id uint) (*entities.Grow, error)

	ChangeStage(uid string, id uint, in StageInput) (*entities.Grow, error)
	Advance(uid string, id uint) (*entities.Grow, error)
	Board(uid string) ([]BoardColumn, error)
	History(uid string, id uint) ([]entities.GrowStageEvent, error)

	AddFlush(uid string, growID uint, in FlushInput) (*entities.Flush, error)
	ListFlushes(uid string, growID uint) ([]entities.Flush, error)
	DeleteFlush(uid string, flushID uint) error
	Stats(uid string, id uint) (*GrowStats, error)
}

type GrowInput struct {
	Name                string   `json:"name" validate:"required,max=120"`
	StrainID            *uint    `json:"strain_id"`
	CultureID           *uint    `json:"culture_id"`
	Substrate           string   `json:"substrate" validate:"max=120"`
	SubstrateDryWeightG *float64 `json:"substrate_dry_weight_g" validate:"omitempty,gt=0"`
	Container           string   `json:"container" validate:"max=120"`
	InoculatedAt        string   `json:"inoculated_at"`
	Notes               string   `json:"notes"`
}

type GrowPatch struct {
	Name                *string  `json:"name" validate:"omitempty,min=1,max=120"`
	StrainID            *uint    `json:"strain_id"`
	CultureID           *uint    `json:"culture_id"`
	Substrate           *string  `json:"substrate"`
	SubstrateDryWeightG *float64 `json:"substrate_dry_weight_g" validate:"omitempty,gt=0"`
	Container           *string  `json:"container"`
	InoculatedAt        *string  `json:"inoculated_at"`
	Notes               *string  `json:"notes"`
}

type StageInput struct {
	Stage string `json:"stage" validate:"required"`
	Note  string `json:"note" validate:"max=500"`
}

type FlushInput struct {
	HarvestedAt string   `json:"harvested_at"`
	WetWeightG  float64  `json:"wet_weight_g" validate:"gt=0"`
	DryWeightG  *float64 `json:"dry_weight_g" validate:"omitempty,gte=0"`
	Notes       string   `json:"notes"`
}

// BoardColumn is one kanban column; every stage is present, empty or not.
type BoardColumn struct {
	lifecycle.StageInfo
	Targets []lifecycle.Stage `json:"targets"`
	Grows   []entities.Grow   `json:"grows"`
}

type GrowStats struct {
	GrowID     uint     `json:"grow_id"`
	Stage      string   `json:"stage"`
	DaysActive int      `json:"days_active"`
	FlushCount int      `json:"flush_count"`
	TotalWetG  float64  `json:"total_wet_g"`
	TotalDryG  float64  `json:"total_dry_g"`
	BEPercent  *float64 `json:"biological_efficiency_pct"`
}

// BiologicalEfficiency is fresh yield over dry substrate weight in percent;
// nil when the substrate weight is unknown.
func BiologicalEfficiency(totalWetG float64, substrateDryG *float64) *float64 {
	if substrateDryG == nil || *substrateDryG <= 0 {
		return nil
	}
	be := totalWetG / *substrateDryG * 100
	return &be
}
