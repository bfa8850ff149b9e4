package serviceImp

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"mycolab/entities"
	"mycolab/pkg/dates"
	"mycolab/pkg/export/service"
	growrepo "mycolab/pkg/grow/repository"
	growsvc "mycolab/pkg/grow/service"
)

type growSource interface {
	List(uid string, f growrepo.GrowFilter) ([]entities.Grow, error)
	FlushesFor(growIDs []uint) ([]entities.Flush, error)
}

type strainSource interface {
	GetStrain(id uint) (*entities.Strain, error)
}

const (
	growSheet  = "Grows"
	flushSheet = "Flushes"
)

var (
	growHeader  = []any{"Grow ID", "Name", "Strain", "Stage", "Inoculated", "Days active", "Flushes", "Total wet g", "BE %"}
	flushHeader = []any{"Grow", "Number", "Harvested", "Wet g", "Dry g"}
)

type exportSvc struct {
	grows   growSource
	strains strainSource
	zones   dates.Zones
	now     func() time.Time
}

func NewExportService(grows growSource, strains strainSource, zones dates.Zones) service.ExportService {
	if zones == nil {
		zones = dates.Fixed(nil)
	}
	return &exportSvc{grows: grows, strains: strains, zones: zones, now: time.Now}
}

func (s *exportSvc) WriteGrows(w io.Writer, uid string) error {
	grows, err := s.grows.List(uid, growrepo.GrowFilter{IncludeArchived: true})
	if err != nil {
		return err
	}
	ids := make([]uint, len(grows))
	for i, g := range grows {
		ids[i] = g.GrowID
	}
	byGrow := map[uint][]entities.Flush{}
	if len(ids) > 0 {
		flushes, err := s.grows.FlushesFor(ids)
		if err != nil {
			return err
		}
		for _, f := range flushes {
			byGrow[f.GrowID] = append(byGrow[f.GrowID], f)
		}
	}

	loc := s.zones.Location(uid)

	x := excelize.NewFile()
	defer x.Close()
	if err := x.SetSheetName(x.GetSheetName(0), growSheet); err != nil {
		return err
	}
	if _, err := x.NewSheet(flushSheet); err != nil {
		return err
	}
	if err := x.SetSheetRow(growSheet, "A1", &growHeader); err != nil {
		return err
	}
	if err := x.SetSheetRow(flushSheet, "A1", &flushHeader); err != nil {
		return err
	}

	names := map[uint]string{}
	growRow, flushRow := 2, 2
	for _, g := range grows {
		flushes := byGrow[g.GrowID]
		var wet float64
		for _, f := range flushes {
			wet += f.WetWeightG
		}
		end := s.now()
		if g.CompletedAt != nil {
			end = *g.CompletedAt
		}
		var be any = ""
		if v := growsvc.BiologicalEfficiency(wet, g.SubstrateDryWeightG); v != nil {
			be = round1(*v)
		}
		row := []any{
			g.GrowID, g.Name, s.strainName(g.StrainID, names), g.Stage,
			g.InoculatedAt.In(loc).Format(dates.Layout),
			dates.DaysBetween(g.InoculatedAt, end, loc),
			len(flushes), round1(wet), be,
		}
		if err := x.SetSheetRow(growSheet, cell(growRow), &row); err != nil {
			return err
		}
		growRow++

		for _, f := range flushes {
			var dry any = ""
			if f.DryWeightG != nil {
				dry = round1(*f.DryWeightG)
			}
			frow := []any{g.Name, f.Number, f.HarvestedAt.In(loc).Format(dates.Layout), round1(f.WetWeightG), dry}
			if err := x.SetSheetRow(flushSheet, cell(flushRow), &frow); err != nil {
				return err
			}
			flushRow++
		}
	}
	if err := x.SetColWidth(growSheet, "B", "C", 24); err != nil {
		return err
	}
	_, err = x.WriteTo(w)
	return err
}

func (s *exportSvc) strainName(id *uint, cache map[uint]string) string {
	if id == nil || s.strains == nil {
		return ""
	}
	if n, ok := cache[*id]; ok {
		return n
	}
	n := ""
	if st, err := s.strains.GetStrain(*id); err == nil {
		n = st.Name
	}
	cache[*id] = n
	return n
}

func cell(row int) string { return fmt.Sprintf("A%d", row) }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
