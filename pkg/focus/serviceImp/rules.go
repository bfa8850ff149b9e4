package serviceImp

import (
	"fmt"
	"sort"
	"time"

	"mycolab/entities"
	"mycolab/pkg/dates"
	"mycolab/pkg/focus/service"
	invsvc "mycolab/pkg/inventory/service"
	"mycolab/pkg/lifecycle"
)

// snapshot is everything the rules look at, loaded once per request.
type snapshot struct {
	settings  entities.AppSettings
	grows     []entities.Grow
	lastFlush map[uint]time.Time
	lastObs   map[uint]time.Time
	cultures  []entities.Culture
	items     []entities.InventoryItem
	strains   map[uint]strainInfo
}

type strainInfo struct {
	speciesSlug      string
	colonizationDays int
}

type evaluator struct {
	d     *lifecycle.Durations
	loc   *time.Location
	today time.Time
	tasks []service.Task
}

func (e *evaluator) add(t service.Task, due time.Time) {
	t.Due = dates.Day(due, e.loc)
	t.DueDate = t.Due.Format(dates.Layout)
	e.tasks = append(e.tasks, t)
}

// age is the number of whole days since t in the user's timezone.
func (e *evaluator) age(t time.Time) int { return dates.DaysBetween(t, e.today, e.loc) }

func evaluate(snap snapshot, d *lifecycle.Durations, now time.Time, loc *time.Location) []service.Task {
	e := &evaluator{d: d, loc: loc, today: dates.Day(now, loc)}
	for _, g := range snap.grows {
		if g.ArchivedAt != nil || !lifecycle.IsActive(lifecycle.Stage(g.Stage)) {
			continue
		}
		e.growStage(g, snap)
		e.growObservation(g, snap.lastObs, snap.settings.ObservationIntervalDays)
	}
	for _, c := range snap.cultures {
		e.culture(c, snap.settings.CultureTransferDays)
	}
	for _, it := range snap.items {
		e.inventory(it, snap.settings.InventoryExpiryWarnDays)
	}
	return e.tasks
}

func (e *evaluator) growStage(g entities.Grow, snap snapshot) {
	st := lifecycle.Stage(g.Stage)
	info := snap.strainFor(g)
	ref := service.Task{EntityType: "grow", EntityID: g.GrowID}

	switch st {
	case lifecycle.Spawning, lifecycle.Colonization:
		strainDays := 0
		if st == lifecycle.Colonization {
			strainDays = info.colonizationDays
		}
		end, ok := e.d.ExpectedEnd(st, g.StageChangedAt, info.speciesSlug, strainDays)
		if !ok {
			return
		}
		overdue := dates.DaysBetween(end, e.today, e.loc)
		switch {
		case overdue > 0:
			t := ref
			t.Kind = service.KindCheckColonization
			t.Priority = service.Medium
			if overdue > 3 {
				t.Priority = service.High
			}
			t.Title = "Check colonization: " + g.Name
			t.Detail = fmt.Sprintf("%s is %d days past its expected %s end.", g.Name, overdue, st)
			e.add(t, end)
		case overdue == 0 && st == lifecycle.Colonization:
			t := ref
			t.Kind = service.KindMoveToFruiting
			t.Priority = service.Medium
			t.Title = "Move to fruiting: " + g.Name
			t.Detail = fmt.Sprintf("Colonization of %s is due today. Move it to fruiting once fully colonized.", g.Name)
			e.add(t, end)
		}

	case lifecycle.Fruiting:
		n := snap.settings.FruitingNoFlushDays
		since := latest(g.StageChangedAt, snap.lastFlush[g.GrowID])
		if n <= 0 || e.age(since) < n {
			return
		}
		t := ref
		t.Kind = service.KindCheckPins
		t.Priority = service.Medium
		t.Title = "Check for pins: " + g.Name
		t.Detail = fmt.Sprintf("No flush recorded for %d days. Check fresh air, humidity and light.", e.age(since))
		e.add(t, since.AddDate(0, 0, n))

	case lifecycle.Harvesting:
		n := snap.settings.HarvestRestDays
		since := latest(g.StageChangedAt, snap.lastFlush[g.GrowID])
		if n <= 0 || e.age(since) < n {
			return
		}
		t := ref
		t.Kind = service.KindRehydrate
		t.Priority = service.Medium
		t.Title = "Rehydrate for next flush or complete: " + g.Name
		t.Detail = fmt.Sprintf("Last harvest was %d days ago.", e.age(since))
		e.add(t, since.AddDate(0, 0, n))
	}
}

func (e *evaluator) growObservation(g entities.Grow, lastObs map[uint]time.Time, n int) {
	if n <= 0 {
		return
	}
	since := latest(g.InoculatedAt, lastObs[g.GrowID])
	if e.age(since) < n {
		return
	}
	detail := fmt.Sprintf("No observation for %d days.", e.age(since))
	if _, ok := lastObs[g.GrowID]; !ok {
		detail = "No observation logged yet."
	}
	e.add(service.Task{
		Kind:       service.KindLogObservation,
		Priority:   service.Low,
		Title:      "Log an observation: " + g.Name,
		Detail:     detail,
		EntityType: "grow",
		EntityID:   g.GrowID,
	}, since.AddDate(0, 0, n))
}

func (e *evaluator) culture(c entities.Culture, n int) {
	if n <= 0 || c.ArchivedAt != nil || c.Status != entities.CultureActive {
		return
	}
	since := c.PreparedAt
	if c.LastTransferAt != nil {
		since = *c.LastTransferAt
	}
	if e.age(since) < n {
		return
	}
	e.add(service.Task{
		Kind:       service.KindTransferCulture,
		Priority:   service.Medium,
		Title:      "Transfer culture: " + c.Label,
		Detail:     fmt.Sprintf("Last transfer was %d days ago.", e.age(since)),
		EntityType: "culture",
		EntityID:   c.CultureID,
	}, since.AddDate(0, 0, n))
}

func (e *evaluator) inventory(it entities.InventoryItem, warnDays int) {
	if it.ArchivedAt != nil {
		return
	}
	if invsvc.IsLow(it) {
		e.add(service.Task{
			Kind:       service.KindRestock,
			Priority:   service.Medium,
			Title:      "Restock: " + it.Name,
			Detail:     fmt.Sprintf("%g %s left, reorder point is %g.", it.Quantity, it.Unit, *it.ReorderPoint),
			EntityType: "inventory",
			EntityID:   it.ItemID,
		}, e.today)
	}
	if it.ExpiresAt == nil {
		return
	}
	left := dates.DaysBetween(e.today, *it.ExpiresAt, e.loc)
	if left > warnDays {
		return
	}
	t := service.Task{
		Kind:       service.KindUseOrReplace,
		Priority:   service.Medium,
		Title:      "Use or replace: " + it.Name,
		Detail:     fmt.Sprintf("Expires in %d days.", left),
		EntityType: "inventory",
		EntityID:   it.ItemID,
	}
	if left < 0 {
		t.Priority = service.High
		t.Detail = fmt.Sprintf("Expired %d days ago.", -left)
	}
	e.add(t, *it.ExpiresAt)
}

func (s snapshot) strainFor(g entities.Grow) strainInfo {
	if g.StrainID == nil {
		return strainInfo{}
	}
	return s.strains[*g.StrainID]
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// sortTasks orders by priority, then due date, then title.
func sortTasks(tasks []service.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if !a.Due.Equal(b.Due) {
			return a.Due.Before(b.Due)
		}
		return a.Title < b.Title
	})
}
