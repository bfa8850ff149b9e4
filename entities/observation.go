package entities

import "time"

type Observation struct {
	ObservationID uint      `gorm:"primaryKey" json:"observation_id"`
	UserID        string    `json:"user_id" gorm:"index"`
	GrowID        *uint     `json:"grow_id" gorm:"index"`
	CultureID     *uint     `json:"culture_id" gorm:"index"`
	ObservedAt    time.Time `json:"observed_at"`
	Kind          string    `json:"kind"` // general|contamination|pinning|milestone
	TemperatureC  *float64  `json:"temperature_c"`
	HumidityPct   *float64  `json:"humidity_pct"`
	Note          string    `json:"note"`
	PhotoURL      string    `json:"photo_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
