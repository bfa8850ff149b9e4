package repository

import (
	"time"

	"mycolab/entities"
)

type ObservationFilter struct {
	GrowID    *uint
	CultureID *uint
	Kind      string
	Limit     int
}

type ObservationRepository interface {
	Create(o *entities.Observation) error
	Save(o *entities.Observation) error
	FindByID(id uint, uid string) (*entities.Observation, error)
	List(uid string, f ObservationFilter) ([]entities.Observation, error)
	Delete(id uint, uid string) error
	// LatestPerGrow maps grow id to the newest observation time for the user.
	LatestPerGrow(uid string) (map[uint]time.Time, error)
}
