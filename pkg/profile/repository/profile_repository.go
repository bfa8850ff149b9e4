package repository

import "mycolab/entities"

type ProfileRepository interface {
	// FirstOrCreateProfile returns the stored profile, inserting def when missing.
	FirstOrCreateProfile(def entities.UserProfile) (*entities.UserProfile, error)
	SaveProfile(p *entities.UserProfile) error
	ListAdmins() ([]entities.UserProfile, error)

	FirstOrCreateSettings(def entities.AppSettings) (*entities.AppSettings, error)
	SaveSettings(s *entities.AppSettings) error
}
