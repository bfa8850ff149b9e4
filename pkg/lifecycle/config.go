package lifecycle

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Durations gives the expected number of days a grow spends in each active
// stage, optionally scaled per species.
type Durations struct {
	days  map[Stage]int
	notes map[Stage]string
	adj   map[string]float64 // species slug -> factor
}

var defaultDays = map[Stage]int{
	Spawning:     3,
	Colonization: 21,
	Fruiting:     10,
	Harvesting:   7,
}

func DefaultDurations() *Durations {
	d := &Durations{days: map[Stage]int{}, notes: map[Stage]string{}, adj: map[string]float64{}}
	for k, v := range defaultDays {
		d.days[k] = v
	}
	return d
}

// LoadDurations reads the stage table from a .csv or .xlsx file and the
// species factors from a two-column CSV. Empty paths keep the defaults.
func LoadDurations(stagePath, adjustPath string) (*Durations, error) {
	d := DefaultDurations()
	if stagePath != "" {
		var rows [][]string
		var err error
		switch strings.ToLower(filepath.Ext(stagePath)) {
		case ".xlsx":
			rows, err = readXLSX(stagePath)
		default:
			rows, err = readCSV(stagePath)
		}
		if err != nil {
			return nil, err
		}
		if err := d.applyStageRows(rows); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(stagePath), err)
		}
	}
	if adjustPath != "" {
		rows, err := readCSV(adjustPath)
		if err != nil {
			return nil, err
		}
		d.applyAdjustRows(rows)
	}
	return d, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func (d *Durations) applyStageRows(rows [][]string) error {
	if len(rows) == 0 {
		return errors.New("empty stage table")
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}
	cStage := findAny("Stage", "phase")
	cDays := findAny("Days", "duration", "expected_days", "stagedays")
	cNote := findAny("Notes", "note", "tips")
	if cStage == -1 || cDays == -1 {
		return fmt.Errorf("missing required columns, found %v, need Stage and Days", rows[0])
	}

	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		st, ok := Parse(get(cStage))
		if !ok || IsTerminal(st) {
			continue
		}
		days, err := strconv.Atoi(get(cDays))
		if err != nil || days <= 0 {
			continue // skip invalid rows
		}
		d.days[st] = days
		if n := get(cNote); n != "" {
			d.notes[st] = n
		}
	}
	return nil
}

func (d *Durations) applyAdjustRows(rows [][]string) {
	for _, rec := range rows {
		if len(rec) < 2 {
			continue
		}
		fac, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil || fac <= 0 {
			continue // header or junk
		}
		d.adj[strings.ToLower(strings.TrimSpace(rec[0]))] = fac
	}
}

// Days returns the expected stage length. strainDays, when positive, wins
// over the table; otherwise the table value is scaled by the species factor.
func (d *Durations) Days(s Stage, speciesKey string, strainDays int) int {
	if strainDays > 0 {
		return strainDays
	}
	base := d.days[s]
	if base == 0 {
		return 0
	}
	if f, ok := d.adj[strings.ToLower(speciesKey)]; ok {
		return int(math.Round(float64(base) * f))
	}
	return base
}

func (d *Durations) Note(s Stage) string { return d.notes[s] }

// ExpectedEnd is the day a grow that entered s at enteredAt should move on.
func (d *Durations) ExpectedEnd(s Stage, enteredAt time.Time, speciesKey string, strainDays int) (time.Time, bool) {
	n := d.Days(s, speciesKey, strainDays)
	if n <= 0 {
		return time.Time{}, false
	}
	return enteredAt.AddDate(0, 0, n), true
}
