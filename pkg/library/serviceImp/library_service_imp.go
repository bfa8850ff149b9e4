package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gosimple/slug"
	lru "github.com/hashicorp/golang-lru/v2"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/library/importer"
	repo "mycolab/pkg/library/repository"
	"mycolab/pkg/library/service"
	"mycolab/pkg/validate"
)

const (
	strainCacheSize   = 512
	maxDescriptionLen = 20000
)

type pageFetcher interface {
	Fetch(ctx context.Context, url string) (*importer.Page, error)
}

type librarySvc struct {
	r       repo.LibraryRepository
	fetch   pageFetcher
	strains *lru.Cache[uint, entities.Strain]
}

func NewLibraryService(r repo.LibraryRepository, fetch pageFetcher) service.LibraryService {
	cache, err := lru.New[uint, entities.Strain](strainCacheSize)
	if err != nil {
		panic(err)
	}
	return &librarySvc{r: r, fetch: fetch, strains: cache}
}

// uniqueSlug derives a slug from name, suffixing -2, -3... on collision.
func (s *librarySvc) uniqueSlug(table, name string, exceptID uint) (string, error) {
	base := slug.Make(name)
	if base == "" {
		return "", apperr.Invalid("name %q has no usable characters", name)
	}
	cand := base
	for i := 2; ; i++ {
		taken, err := s.r.SlugExists(table, cand, exceptID)
		if err != nil {
			return "", err
		}
		if !taken {
			return cand, nil
		}
		cand = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *librarySvc) ListSpecies(q string) ([]entities.Species, error) { return s.r.ListSpecies(q) }

func (s *librarySvc) GetSpecies(id uint) (*entities.Species, error) { return s.r.FindSpecies(id) }

func (s *librarySvc) CreateSpecies(in service.SpeciesInput) (*entities.Species, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	sl, err := s.uniqueSlug("species", in.Name, 0)
	if err != nil {
		return nil, err
	}
	sp := &entities.Species{
		Name:           strings.TrimSpace(in.Name),
		ScientificName: strings.TrimSpace(in.ScientificName),
		Slug:           sl,
		Description:    strings.TrimSpace(in.Description),
		SourceURL:      strings.TrimSpace(in.SourceURL),
	}
	if err := s.r.CreateSpecies(sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *librarySvc) UpdateSpecies(id uint, in service.SpeciesInput) (*entities.Species, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	sp, err := s.r.FindSpecies(id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != sp.Name {
		if sp.Slug, err = s.uniqueSlug("species", name, sp.SpeciesID); err != nil {
			return nil, err
		}
		sp.Name = name
	}
	sp.ScientificName = strings.TrimSpace(in.ScientificName)
	sp.Description = strings.TrimSpace(in.Description)
	sp.SourceURL = strings.TrimSpace(in.SourceURL)
	if err := s.r.SaveSpecies(sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// DeleteSpecies refuses while strains still reference the species.
func (s *librarySvc) DeleteSpecies(id uint) error {
	n, err := s.r.CountStrains(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: species %d still has %d strains", apperr.ErrConflict, id, n)
	}
	return s.r.DeleteSpecies(id)
}

func (s *librarySvc) ListStrains(speciesID *uint, q string) ([]entities.Strain, error) {
	return s.r.ListStrains(speciesID, q)
}

func (s *librarySvc) GetStrain(id uint) (*entities.Strain, error) {
	if st, ok := s.strains.Get(id); ok {
		return &st, nil
	}
	st, err := s.r.FindStrain(id)
	if err != nil {
		return nil, err
	}
	s.strains.Add(id, *st)
	return st, nil
}

func (s *librarySvc) CreateStrain(in service.StrainInput) (*entities.Strain, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if _, err := s.r.FindSpecies(in.SpeciesID); err != nil {
		return nil, err
	}
	sl, err := s.uniqueSlug("strains", in.Name, 0)
	if err != nil {
		return nil, err
	}
	st := &entities.Strain{
		SpeciesID:        in.SpeciesID,
		Name:             strings.TrimSpace(in.Name),
		Slug:             sl,
		Description:      strings.TrimSpace(in.Description),
		ColonizationDays: in.ColonizationDays,
		FruitingDays:     in.FruitingDays,
	}
	if err := s.r.CreateStrain(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *librarySvc) UpdateStrain(id uint, in service.StrainInput) (*entities.Strain, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	st, err := s.r.FindStrain(id)
	if err != nil {
		return nil, err
	}
	if in.SpeciesID != st.SpeciesID {
		if _, err := s.r.FindSpecies(in.SpeciesID); err != nil {
			return nil, err
		}
		st.SpeciesID = in.SpeciesID
	}
	if name := strings.TrimSpace(in.Name); name != st.Name {
		if st.Slug, err = s.uniqueSlug("strains", name, st.StrainID); err != nil {
			return nil, err
		}
		st.Name = name
	}
	st.Description = strings.TrimSpace(in.Description)
	st.ColonizationDays = in.ColonizationDays
	st.FruitingDays = in.FruitingDays
	if err := s.r.SaveStrain(st); err != nil {
		return nil, err
	}
	s.strains.Remove(id)
	return st, nil
}

func (s *librarySvc) DeleteStrain(id uint) error {
	s.strains.Remove(id)
	return s.r.DeleteStrain(id)
}

func (s *librarySvc) ImportSpecies(ctx context.Context, in service.ImportInput) (*entities.Species, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if s.fetch == nil {
		return nil, fmt.Errorf("%w: importer not configured", apperr.ErrUnavailable)
	}
	page, err := s.fetch.Fetch(ctx, in.URL)
	if err != nil {
		return nil, err
	}
	desc := importer.Clip(page.Text, maxDescriptionLen)

	var sp *entities.Species
	if in.SpeciesID != nil {
		if sp, err = s.r.FindSpecies(*in.SpeciesID); err != nil {
			return nil, err
		}
	} else {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			name = page.Title
		}
		if strings.TrimSpace(name) == "" {
			return nil, apperr.Invalid("page has no title; pass a name")
		}
		sp, err = s.r.FindSpeciesBySlug(slug.Make(name))
		if errors.Is(err, apperr.ErrNotFound) {
			created, err := s.CreateSpecies(service.SpeciesInput{
				Name:           name,
				ScientificName: in.ScientificName,
				Description:    desc,
				SourceURL:      page.URL,
			})
			if err == nil {
				slog.Info("library import created species", "species_id", created.SpeciesID, "url", page.URL)
			}
			return created, err
		}
		if err != nil {
			return nil, err
		}
	}
	sp.Description = desc
	sp.SourceURL = page.URL
	if in.ScientificName != "" {
		sp.ScientificName = strings.TrimSpace(in.ScientificName)
	}
	if err := s.r.SaveSpecies(sp); err != nil {
		return nil, err
	}
	slog.Info("library import updated species", "species_id", sp.SpeciesID, "url", page.URL)
	return sp, nil
}
