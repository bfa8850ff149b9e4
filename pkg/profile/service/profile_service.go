package service

import (
	"time"

	"mycolab/entities"
)

type ProfileService interface {
	GetProfile(uid string) (*entities.UserProfile, error)
	UpdateProfile(uid string, patch ProfilePatch) (*entities.UserProfile, error)
	GetSettings(uid string) (*entities.AppSettings, error)
	UpdateSettings(uid string, patch SettingsPatch) (*entities.AppSettings, error)
	// Location is the user's settings timezone, UTC when it cannot be read.
	Location(uid string) *time.Location

	IsAdmin(uid string) (bool, error)
	SetAdmin(uid string, admin bool) (*entities.UserProfile, error)
	ListAdmins() ([]entities.UserProfile, error)
	// BootstrapAdmins grants the admin flag to every listed user.
	BootstrapAdmins(uids []string) error
}

type ProfilePatch struct {
	DisplayName     *string `json:"display_name" validate:"omitempty,max=80"`
	Email           *string `json:"email" validate:"omitempty,email"`
	ExperienceLevel *string `json:"experience_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

type SettingsPatch struct {
	Units                   *string `json:"units" validate:"omitempty,oneof=metric imperial"`
	Timezone                *string `json:"timezone" validate:"omitempty,timezone"`
	EmailNotifications      *bool   `json:"email_notifications"`
	FocusLimit              *int    `json:"focus_limit" validate:"omitempty,min=1,max=50"`
	ObservationIntervalDays *int    `json:"observation_interval_days" validate:"omitempty,min=1,max=365"`
	CultureTransferDays     *int    `json:"culture_transfer_days" validate:"omitempty,min=1,max=365"`
	InventoryExpiryWarnDays *int    `json:"inventory_expiry_warn_days" validate:"omitempty,min=1,max=365"`
	FruitingNoFlushDays     *int    `json:"fruiting_no_flush_days" validate:"omitempty,min=1,max=365"`
	HarvestRestDays         *int    `json:"harvest_rest_days" validate:"omitempty,min=1,max=365"`
}
