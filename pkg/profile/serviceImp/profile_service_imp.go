package serviceImp

import (
	"log/slog"
	"strings"
	"time"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/dates"
	repo "mycolab/pkg/profile/repository"
	"mycolab/pkg/profile/service"
	"mycolab/pkg/validate"
)

type profileSvc struct {
	r         repo.ProfileRepository
	defaultTZ string
}

// NewProfileService creates settings for new users in defaultTZ ("" is UTC).
func NewProfileService(r repo.ProfileRepository, defaultTZ string) service.ProfileService {
	if dates.Location(defaultTZ).String() != defaultTZ {
		defaultTZ = "UTC"
	}
	return &profileSvc{r: r, defaultTZ: defaultTZ}
}

func (s *profileSvc) GetProfile(uid string) (*entities.UserProfile, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, apperr.Invalid("missing user id")
	}
	return s.r.FirstOrCreateProfile(entities.UserProfile{UserID: uid, DisplayName: uid, ExperienceLevel: "beginner"})
}

func (s *profileSvc) UpdateProfile(uid string, p service.ProfilePatch) (*entities.UserProfile, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}
	prof, err := s.GetProfile(uid)
	if err != nil {
		return nil, err
	}
	if p.DisplayName != nil {
		prof.DisplayName = strings.TrimSpace(*p.DisplayName)
	}
	if p.Email != nil {
		prof.Email = strings.TrimSpace(*p.Email)
	}
	if p.ExperienceLevel != nil {
		prof.ExperienceLevel = *p.ExperienceLevel
	}
	if err := s.r.SaveProfile(prof); err != nil {
		return nil, err
	}
	return prof, nil
}

func (s *profileSvc) GetSettings(uid string) (*entities.AppSettings, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, apperr.Invalid("missing user id")
	}
	def := entities.DefaultSettings(uid)
	def.Timezone = s.defaultTZ
	return s.r.FirstOrCreateSettings(def)
}

func (s *profileSvc) UpdateSettings(uid string, p service.SettingsPatch) (*entities.AppSettings, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}
	st, err := s.GetSettings(uid)
	if err != nil {
		return nil, err
	}
	if p.Units != nil {
		st.Units = *p.Units
	}
	if p.Timezone != nil {
		st.Timezone = *p.Timezone
	}
	if p.EmailNotifications != nil {
		st.EmailNotifications = *p.EmailNotifications
	}
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	setInt(&st.FocusLimit, p.FocusLimit)
	setInt(&st.ObservationIntervalDays, p.ObservationIntervalDays)
	setInt(&st.CultureTransferDays, p.CultureTransferDays)
	setInt(&st.InventoryExpiryWarnDays, p.InventoryExpiryWarnDays)
	setInt(&st.FruitingNoFlushDays, p.FruitingNoFlushDays)
	setInt(&st.HarvestRestDays, p.HarvestRestDays)
	if err := s.r.SaveSettings(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *profileSvc) Location(uid string) *time.Location {
	st, err := s.GetSettings(uid)
	if err != nil {
		slog.Warn("settings lookup failed, using UTC", "uid", uid, "err", err)
		return time.UTC
	}
	return dates.Location(st.Timezone)
}

func (s *profileSvc) IsAdmin(uid string) (bool, error) {
	p, err := s.GetProfile(uid)
	if err != nil {
		return false, err
	}
	return p.IsAdmin, nil
}

func (s *profileSvc) SetAdmin(uid string, admin bool) (*entities.UserProfile, error) {
	p, err := s.GetProfile(uid)
	if err != nil {
		return nil, err
	}
	if p.IsAdmin == admin {
		return p, nil
	}
	p.IsAdmin = admin
	if err := s.r.SaveProfile(p); err != nil {
		return nil, err
	}
	slog.Info("admin flag changed", "uid", uid, "admin", admin)
	return p, nil
}

func (s *profileSvc) ListAdmins() ([]entities.UserProfile, error) { return s.r.ListAdmins() }

func (s *profileSvc) BootstrapAdmins(uids []string) error {
	for _, uid := range uids {
		if _, err := s.SetAdmin(uid, true); err != nil {
			return err
		}
	}
	return nil
}
