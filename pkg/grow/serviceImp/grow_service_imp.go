package serviceImp

import (
	"strings"
	"time"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/dates"
	repo "mycolab/pkg/grow/repository"
	"mycolab/pkg/grow/service"
	"mycolab/pkg/lifecycle"
	"mycolab/pkg/validate"
)

type strainLookup interface {
	GetStrain(id uint) (*entities.Strain, error)
}

type cultureLookup interface {
	Get(uid string, id uint) (*entities.Culture, error)
}

type growSvc struct {
	r        repo.GrowRepository
	strains  strainLookup
	cultures cultureLookup
	zones    dates.Zones
	now      func() time.Time
}

// NewGrowService keeps calendar dates in the zone zones gives each user; nil
// means UTC.
func NewGrowService(r repo.GrowRepository, strains strainLookup, cultures cultureLookup, zones dates.Zones) service.GrowService {
	if zones == nil {
		zones = dates.Fixed(nil)
	}
	return &growSvc{r: r, strains: strains, cultures: cultures, zones: zones, now: time.Now}
}

func (s *growSvc) checkRefs(uid string, strainID, cultureID *uint) error {
	if strainID != nil && s.strains != nil {
		if _, err := s.strains.GetStrain(*strainID); err != nil {
			return err
		}
	}
	if cultureID != nil && s.cultures != nil {
		if _, err := s.cultures.Get(uid, *cultureID); err != nil {
			return err
		}
	}
	return nil
}

func (s *growSvc) Create(uid string, in service.GrowInput) (*entities.Grow, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if err := s.checkRefs(uid, in.StrainID, in.CultureID); err != nil {
		return nil, err
	}
	now := s.now()
	loc := s.zones.Location(uid)
	inoculated, err := dates.ParseOr(in.InoculatedAt, dates.Day(now, loc), loc)
	if err != nil {
		return nil, err
	}
	g := &entities.Grow{
		UserID:              uid,
		Name:                strings.TrimSpace(in.Name),
		StrainID:            in.StrainID,
		CultureID:           in.CultureID,
		Substrate:           strings.TrimSpace(in.Substrate),
		SubstrateDryWeightG: in.SubstrateDryWeightG,
		Container:           strings.TrimSpace(in.Container),
		Stage:               string(lifecycle.Spawning),
		InoculatedAt:        inoculated,
		StageChangedAt:      now,
		Notes:               in.Notes,
	}
	if err := s.r.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *growSvc) Get(uid string, id uint) (*entities.Grow, error) {
	return s.r.FindByID(id, uid)
}

func (s *growSvc) List(uid string, stage string, includeArchived bool) ([]entities.Grow, error) {
	if stage != "" {
		st, ok := lifecycle.Parse(stage)
		if !ok {
			return nil, apperr.Invalid("unknown stage %q", stage)
		}
		stage = string(st)
	}
	return s.r.List(uid, repo.GrowFilter{Stage: stage, IncludeArchived: includeArchived})
}

func (s *growSvc) Update(uid string, id uint, p service.GrowPatch) (*entities.Grow, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}
	g, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(uid, p.StrainID, p.CultureID); err != nil {
		return nil, err
	}
	if p.Name != nil {
		g.Name = strings.TrimSpace(*p.Name)
	}
	if p.StrainID != nil {
		g.StrainID = p.StrainID
	}
	if p.CultureID != nil {
		g.CultureID = p.CultureID
	}
	if p.Substrate != nil {
		g.Substrate = strings.TrimSpace(*p.Substrate)
	}
	if p.SubstrateDryWeightG != nil {
		g.SubstrateDryWeightG = p.SubstrateDryWeightG
	}
	if p.Container != nil {
		g.Container = strings.TrimSpace(*p.Container)
	}
	if p.InoculatedAt != nil {
		t, err := dates.Parse(*p.InoculatedAt, s.zones.Location(uid))
		if err != nil {
			return nil, err
		}
		g.InoculatedAt = t
	}
	if p.Notes != nil {
		g.Notes = *p.Notes
	}
	if err := s.r.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *growSvc) Delete(uid string, id uint) error {
	return s.r.Delete(id, uid)
}

func (s *growSvc) Archive(uid string, id uint) (*entities.Grow, error) {
	g, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if g.ArchivedAt == nil {
		now := s.now()
		g.ArchivedAt = &now
		if err := s.r.Save(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (s *growSvc) Unarchive(uid string, id uint) (*entities.Grow, error) {
	g, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if g.ArchivedAt != nil {
		g.ArchivedAt = nil
		if err := s.r.Save(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// moveStage applies a validated transition, stamps the stage timestamps and
// records the event. Callers run it inside a transaction.
func (s *growSvc) moveStage(r repo.GrowRepository, g *entities.Grow, to lifecycle.Stage, note string) error {
	from := lifecycle.Stage(g.Stage)
	if err := lifecycle.Transition(from, to); err != nil {
		return err
	}
	now := s.now()
	switch to {
	case lifecycle.Fruiting:
		if g.ColonizedAt == nil {
			g.ColonizedAt = &now
		}
		if g.FruitingAt == nil {
			g.FruitingAt = &now
		}
	case lifecycle.Completed, lifecycle.Contaminated, lifecycle.Aborted:
		g.CompletedAt = &now
	}
	g.Stage = string(to)
	g.StageChangedAt = now
	if err := r.Save(g); err != nil {
		return err
	}
	return r.AddEvent(&entities.GrowStageEvent{
		GrowID:    g.GrowID,
		FromStage: string(from),
		ToStage:   string(to),
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
	})
}

func (s *growSvc) ChangeStage(uid string, id uint, in service.StageInput) (*entities.Grow, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	to, ok := lifecycle.Parse(in.Stage)
	if !ok {
		return nil, apperr.Invalid("unknown stage %q", in.Stage)
	}
	var out *entities.Grow
	err := s.r.WithTx(func(r repo.GrowRepository) error {
		g, err := r.FindByID(id, uid)
		if err != nil {
			return err
		}
		if err := s.moveStage(r, g, to, in.Note); err != nil {
			return err
		}
		out = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *growSvc) Advance(uid string, id uint) (*entities.Grow, error) {
	g, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	next, ok := lifecycle.Next(lifecycle.Stage(g.Stage))
	if !ok {
		return nil, lifecycle.Transition(lifecycle.Stage(g.Stage), lifecycle.Stage(g.Stage))
	}
	return s.ChangeStage(uid, id, service.StageInput{Stage: string(next)})
}

func (s *growSvc) Board(uid string) ([]service.BoardColumn, error) {
	grows, err := s.r.List(uid, repo.GrowFilter{})
	if err != nil {
		return nil, err
	}
	stages := lifecycle.All()
	cols := make([]service.BoardColumn, len(stages))
	idx := make(map[lifecycle.Stage]int, len(stages))
	for i, info := range stages {
		cols[i] = service.BoardColumn{StageInfo: info, Targets: lifecycle.Targets(info.Stage), Grows: []entities.Grow{}}
		idx[info.Stage] = i
	}
	for _, g := range grows {
		i, ok := idx[lifecycle.Stage(g.Stage)]
		if !ok {
			continue
		}
		cols[i].Grows = append(cols[i].Grows, g)
	}
	return cols, nil
}

func (s *growSvc) History(uid string, id uint) ([]entities.GrowStageEvent, error) {
	if _, err := s.r.FindByID(id, uid); err != nil {
		return nil, err
	}
	return s.r.Events(id)
}

// AddFlush records a harvest. A grow still in fruiting moves to harvesting.
func (s *growSvc) AddFlush(uid string, growID uint, in service.FlushInput) (*entities.Flush, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	harvested, err := dates.ParseOr(in.HarvestedAt, s.now(), s.zones.Location(uid))
	if err != nil {
		return nil, err
	}
	var out *entities.Flush
	err = s.r.WithTx(func(r repo.GrowRepository) error {
		g, err := r.FindByID(growID, uid)
		if err != nil {
			return err
		}
		switch lifecycle.Stage(g.Stage) {
		case lifecycle.Fruiting:
			if err := s.moveStage(r, g, lifecycle.Harvesting, "flush recorded"); err != nil {
				return err
			}
		case lifecycle.Harvesting:
		default:
			return apperr.Invalid("flushes can only be recorded while fruiting or harvesting (stage is %s)", g.Stage)
		}
		n, err := r.MaxFlushNumber(g.GrowID)
		if err != nil {
			return err
		}
		f := &entities.Flush{
			GrowID:      g.GrowID,
			Number:      n + 1,
			HarvestedAt: harvested,
			WetWeightG:  in.WetWeightG,
			DryWeightG:  in.DryWeightG,
			Notes:       in.Notes,
		}
		if err := r.CreateFlush(f); err != nil {
			return err
		}
		out = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *growSvc) ListFlushes(uid string, growID uint) ([]entities.Flush, error) {
	if _, err := s.r.FindByID(growID, uid); err != nil {
		return nil, err
	}
	return s.r.Flushes(growID)
}

func (s *growSvc) DeleteFlush(uid string, flushID uint) error {
	f, err := s.r.FindFlush(flushID, uid)
	if err != nil {
		return err
	}
	return s.r.DeleteFlush(f.FlushID)
}

func (s *growSvc) Stats(uid string, id uint) (*service.GrowStats, error) {
	g, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	flushes, err := s.r.Flushes(id)
	if err != nil {
		return nil, err
	}
	st := &service.GrowStats{GrowID: g.GrowID, Stage: g.Stage, FlushCount: len(flushes)}
	for _, f := range flushes {
		st.TotalWetG += f.WetWeightG
		if f.DryWeightG != nil {
			st.TotalDryG += *f.DryWeightG
		}
	}
	end := s.now()
	if g.CompletedAt != nil {
		end = *g.CompletedAt
	}
	st.DaysActive = dates.DaysBetween(g.InoculatedAt, end, s.zones.Location(uid))
	st.BEPercent = service.BiologicalEfficiency(st.TotalWetG, g.SubstrateDryWeightG)
	return st, nil
}
