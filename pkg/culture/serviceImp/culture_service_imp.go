package serviceImp

import (
	"strings"
	"time"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	repo "mycolab/pkg/culture/repository"
	"mycolab/pkg/culture/service"
	"mycolab/pkg/dates"
	"mycolab/pkg/validate"
)

// strainLookup resolves library references; nil skips the checks.
type strainLookup interface {
	GetSpecies(id uint) (*entities.Species, error)
	GetStrain(id uint) (*entities.Strain, error)
}

type cultureSvc struct {
	r       repo.CultureRepository
	library strainLookup
	zones   dates.Zones
	now     func() time.Time
}

func NewCultureService(r repo.CultureRepository, library strainLookup, zones dates.Zones) service.CultureService {
	if zones == nil {
		zones = dates.Fixed(nil)
	}
	return &cultureSvc{r: r, library: library, zones: zones, now: time.Now}
}

func (s *cultureSvc) resolveLibrary(speciesID, strainID *uint) (*uint, error) {
	if s.library == nil {
		return speciesID, nil
	}
	if strainID != nil {
		st, err := s.library.GetStrain(*strainID)
		if err != nil {
			return nil, err
		}
		if speciesID != nil && *speciesID != st.SpeciesID {
			return nil, apperr.Invalid("strain %d does not belong to species %d", st.StrainID, *speciesID)
		}
		id := st.SpeciesID
		return &id, nil
	}
	if speciesID != nil {
		if _, err := s.library.GetSpecies(*speciesID); err != nil {
			return nil, err
		}
	}
	return speciesID, nil
}

func (s *cultureSvc) Create(uid string, in service.CultureInput) (*entities.Culture, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	loc := s.zones.Location(uid)
	prepared, err := dates.ParseOr(in.PreparedAt, s.now(), loc)
	if err != nil {
		return nil, err
	}
	expires, err := dates.ParsePtr(in.ExpiresAt, loc)
	if err != nil {
		return nil, err
	}
	speciesID, err := s.resolveLibrary(in.SpeciesID, in.StrainID)
	if err != nil {
		return nil, err
	}
	typ := in.Type
	if typ == "" {
		typ = "agar"
	}
	c := &entities.Culture{
		UserID:          uid,
		Label:           strings.TrimSpace(in.Label),
		Type:            typ,
		SpeciesID:       speciesID,
		StrainID:        in.StrainID,
		Generation:      1,
		Source:          strings.TrimSpace(in.Source),
		Status:          entities.CultureActive,
		PreparedAt:      prepared,
		ExpiresAt:       expires,
		StorageLocation: strings.TrimSpace(in.StorageLocation),
		Notes:           in.Notes,
	}
	if err := s.r.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cultureSvc) Get(uid string, id uint) (*entities.Culture, error) {
	return s.r.FindByID(id, uid)
}

func (s *cultureSvc) List(uid string, includeArchived bool) ([]entities.Culture, error) {
	return s.r.List(uid, includeArchived)
}

func (s *cultureSvc) Update(uid string, id uint, p service.CulturePatch) (*entities.Culture, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}
	c, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if p.Label != nil {
		c.Label = strings.TrimSpace(*p.Label)
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.SpeciesID != nil || p.StrainID != nil {
		speciesID, strainID := c.SpeciesID, c.StrainID
		if p.SpeciesID != nil {
			speciesID = p.SpeciesID
		}
		if p.StrainID != nil {
			strainID = p.StrainID
		}
		resolved, err := s.resolveLibrary(speciesID, strainID)
		if err != nil {
			return nil, err
		}
		c.SpeciesID, c.StrainID = resolved, strainID
	}
	if p.Source != nil {
		c.Source = strings.TrimSpace(*p.Source)
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.PreparedAt != nil {
		t, err := dates.Parse(*p.PreparedAt, s.zones.Location(uid))
		if err != nil {
			return nil, err
		}
		c.PreparedAt = t
	}
	if p.ExpiresAt != nil {
		t, err := dates.ParsePtr(p.ExpiresAt, s.zones.Location(uid))
		if err != nil {
			return nil, err
		}
		c.ExpiresAt = t
	}
	if p.StorageLocation != nil {
		c.StorageLocation = strings.TrimSpace(*p.StorageLocation)
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if err := s.r.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cultureSvc) Archive(uid string, id uint) (*entities.Culture, error) {
	c, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if c.ArchivedAt == nil {
		now := s.now()
		c.ArchivedAt = &now
		c.Status = entities.CultureArchived
		if err := s.r.Save(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *cultureSvc) Unarchive(uid string, id uint) (*entities.Culture, error) {
	c, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if c.ArchivedAt != nil {
		c.ArchivedAt = nil
		if c.Status == entities.CultureArchived {
			c.Status = entities.CultureActive
		}
		if err := s.r.Save(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *cultureSvc) Delete(uid string, id uint) error {
	return s.r.Delete(id, uid)
}

// Transfer makes a child culture one generation below the parent and stamps
// the parent's last transfer date.
func (s *cultureSvc) Transfer(uid string, parentID uint, in service.TransferInput) (*entities.Culture, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	now := s.now()
	prepared, err := dates.ParseOr(in.PreparedAt, now, s.zones.Location(uid))
	if err != nil {
		return nil, err
	}
	var child *entities.Culture
	err = s.r.WithTx(func(r repo.CultureRepository) error {
		parent, err := r.FindByID(parentID, uid)
		if err != nil {
			return err
		}
		if parent.ArchivedAt != nil || parent.Status == entities.CultureContaminated {
			return apperr.Invalid("culture %d cannot be transferred while %s", parent.CultureID, parent.Status)
		}
		typ := in.Type
		if typ == "" {
			typ = parent.Type
		}
		pid := parent.CultureID
		c := &entities.Culture{
			UserID:          uid,
			Label:           strings.TrimSpace(in.Label),
			Type:            typ,
			SpeciesID:       parent.SpeciesID,
			StrainID:        parent.StrainID,
			ParentID:        &pid,
			Generation:      parent.Generation + 1,
			Source:          "transfer from " + parent.Label,
			Status:          entities.CultureActive,
			PreparedAt:      prepared,
			StorageLocation: strings.TrimSpace(in.StorageLocation),
			Notes:           in.Notes,
		}
		if err := r.Create(c); err != nil {
			return err
		}
		parent.LastTransferAt = &now
		if err := r.Save(parent); err != nil {
			return err
		}
		child = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return child, nil
}
