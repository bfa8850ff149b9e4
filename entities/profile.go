package entities

import "time"

type UserProfile struct {
	UserID          string    `gorm:"primaryKey" json:"user_id"`
	DisplayName     string    `json:"display_name"`
	Email           string    `json:"email"`
	ExperienceLevel string    `json:"experience_level"` // beginner|intermediate|advanced
	IsAdmin         bool      `json:"is_admin"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppSettings struct {
	UserID                  string    `gorm:"primaryKey" json:"user_id"`
	Units                   string    `json:"units"` // metric|imperial
	Timezone                string    `json:"timezone"`
	EmailNotifications      bool      `json:"email_notifications"`
	FocusLimit              int       `json:"focus_limit"`
	ObservationIntervalDays int       `json:"observation_interval_days"`
	CultureTransferDays     int       `json:"culture_transfer_days"`
	InventoryExpiryWarnDays int       `json:"inventory_expiry_warn_days"`
	FruitingNoFlushDays     int       `json:"fruiting_no_flush_days"`
	HarvestRestDays         int       `json:"harvest_rest_days"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (AppSettings) TableName() string { return "app_settings" }

// DefaultSettings returns the settings a new account starts with.
func DefaultSettings(uid string) AppSettings {
	return AppSettings{
		UserID:                  uid,
		Units:                   "metric",
		Timezone:                "UTC",
		EmailNotifications:      true,
		FocusLimit:              8,
		ObservationIntervalDays: 3,
		CultureTransferDays:     60,
		InventoryExpiryWarnDays: 14,
		FruitingNoFlushDays:     10,
		HarvestRestDays:         7,
	}
}
