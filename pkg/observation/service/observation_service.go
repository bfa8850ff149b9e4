package service

import (
	"context"
	"io"

	"mycolab/entities"
)

const MaxPhotoBytes = 10 << 20

type ObservationService interface {
	Create(uid string, in ObservationInput) (*entities.Observation, error)
	List(uid string, growID, cultureID *uint) ([]entities.Observation, error)
	Update(uid string, id uint, patch ObservationPatch) (*entities.Observation, error)
	Delete(uid string, id uint) error
	UploadPhoto(ctx context.Context, uid string, id uint, photo Photo) (*entities.Observation, error)
}

type ObservationInput struct {
	GrowID       *uint    `json:"grow_id"`
	CultureID    *uint    `json:"culture_id"`
	ObservedAt   string   `json:"observed_at"`
	Kind         string   `json:"kind" validate:"omitempty,oneof=general contamination pinning milestone"`
	TemperatureC *float64 `json:"temperature_c" validate:"omitempty,gte=-20,lte=60"`
	HumidityPct  *float64 `json:"humidity_pct" validate:"omitempty,gte=0,lte=100"`
	Note         string   `json:"note" validate:"max=4000"`
}

type ObservationPatch struct {
	ObservedAt   *string  `json:"observed_at"`
	Kind         *string  `json:"kind" validate:"omitempty,oneof=general contamination pinning milestone"`
	TemperatureC *float64 `json:"temperature_c" validate:"omitempty,gte=-20,lte=60"`
	HumidityPct  *float64 `json:"humidity_pct" validate:"omitempty,gte=0,lte=100"`
	Note         *string  `json:"note" validate:"omitempty,max=4000"`
}

type Photo struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
