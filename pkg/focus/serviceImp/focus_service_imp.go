package serviceImp

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"mycolab/entities"
	"mycolab/pkg/dates"
	"mycolab/pkg/focus/service"
	growrepo "mycolab/pkg/grow/repository"
	"mycolab/pkg/lifecycle"
)

type growSource interface {
	List(uid string, f growrepo.GrowFilter) ([]entities.Grow, error)
	FlushesFor(growIDs []uint) ([]entities.Flush, error)
}

type cultureSource interface {
	List(uid string, includeArchived bool) ([]entities.Culture, error)
}

type inventorySource interface {
	List(uid, category string, includeArchived bool) ([]entities.InventoryItem, error)
}

type observationSource interface {
	LatestPerGrow(uid string) (map[uint]time.Time, error)
}

type settingsSource interface {
	GetSettings(uid string) (*entities.AppSettings, error)
}

type strainSource interface {
	GetStrain(id uint) (*entities.Strain, error)
	GetSpecies(id uint) (*entities.Species, error)
}

type Sources struct {
	Grows        growSource
	Cultures     cultureSource
	Inventory    inventorySource
	Observations observationSource
	Settings     settingsSource
	Strains      strainSource
}

type focusSvc struct {
	src Sources
	d   *lifecycle.Durations
	now func() time.Time
}

func NewFocusService(src Sources, d *lifecycle.Durations) service.FocusService {
	if d == nil {
		d = lifecycle.DefaultDurations()
	}
	return &focusSvc{src: src, d: d, now: time.Now}
}

func (s *focusSvc) Today(ctx context.Context, uid string) (*service.Focus, error) {
	snap, err := s.load(ctx, uid)
	if err != nil {
		return nil, err
	}
	loc := dates.Location(snap.settings.Timezone)
	now := s.now()

	tasks := evaluate(snap, s.d, now, loc)
	sortTasks(tasks)
	out := &service.Focus{
		Date:     dates.Day(now, loc).Format(dates.Layout),
		Timezone: loc.String(),
		Total:    len(tasks),
		Tasks:    tasks,
	}
	if limit := snap.settings.FocusLimit; limit > 0 && len(out.Tasks) > limit {
		out.Tasks = out.Tasks[:limit]
	}
	if out.Tasks == nil {
		out.Tasks = []service.Task{}
	}
	return out, nil
}

// load reads every source concurrently; the first error cancels the rest.
func (s *focusSvc) load(ctx context.Context, uid string) (snapshot, error) {
	var snap snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		st, err := s.src.Settings.GetSettings(uid)
		if err != nil {
			return err
		}
		snap.settings = *st
		return nil
	})
	g.Go(func() error {
		grows, err := s.src.Grows.List(uid, growrepo.GrowFilter{})
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		ids := make([]uint, 0, len(grows))
		for _, gr := range grows {
			if lifecycle.IsActive(lifecycle.Stage(gr.Stage)) {
				ids = append(ids, gr.GrowID)
			}
		}
		last := map[uint]time.Time{}
		if len(ids) > 0 {
			flushes, err := s.src.Grows.FlushesFor(ids)
			if err != nil {
				return err
			}
			for _, f := range flushes {
				if f.HarvestedAt.After(last[f.GrowID]) {
					last[f.GrowID] = f.HarvestedAt
				}
			}
		}
		snap.grows, snap.lastFlush = grows, last
		snap.strains = s.strainInfo(grows)
		return nil
	})
	g.Go(func() error {
		if s.src.Cultures == nil {
			return nil
		}
		cs, err := s.src.Cultures.List(uid, false)
		snap.cultures = cs
		return err
	})
	g.Go(func() error {
		if s.src.Inventory == nil {
			return nil
		}
		items, err := s.src.Inventory.List(uid, "", false)
		snap.items = items
		return err
	})
	g.Go(func() error {
		if s.src.Observations == nil {
			snap.lastObs = map[uint]time.Time{}
			return nil
		}
		m, err := s.src.Observations.LatestPerGrow(uid)
		snap.lastObs = m
		return err
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// strainInfo resolves the strain and species data the duration table needs.
// A strain that no longer exists falls back to the stage defaults.
func (s *focusSvc) strainInfo(grows []entities.Grow) map[uint]strainInfo {
	out := map[uint]strainInfo{}
	if s.src.Strains == nil {
		return out
	}
	slugs := map[uint]string{}
	for _, gr := range grows {
		if gr.StrainID == nil {
			continue
		}
		if _, done := out[*gr.StrainID]; done {
			continue
		}
		st, err := s.src.Strains.GetStrain(*gr.StrainID)
		if err != nil {
			slog.Debug("focus strain lookup", "strain", *gr.StrainID, "err", err)
			out[*gr.StrainID] = strainInfo{}
			continue
		}
		slug, ok := slugs[st.SpeciesID]
		if !ok {
			if sp, err := s.src.Strains.GetSpecies(st.SpeciesID); err == nil {
				slug = sp.Slug
			}
			slugs[st.SpeciesID] = slug
		}
		info := strainInfo{speciesSlug: slug}
		if st.ColonizationDays != nil {
			info.colonizationDays = *st.ColonizationDays
		}
		out[*gr.StrainID] = info
	}
	return out
}
