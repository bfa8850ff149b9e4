package lifecycle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefaultDurations(t *testing.T) {
	d := DefaultDurations()
	assert.Equal(t, 21, d.Days(Colonization, "", 0))
	assert.Equal(t, 0, d.Days(Completed, "", 0))

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end, ok := d.ExpectedEnd(Spawning, start, "", 0)
	assert.True(t, ok)
	assert.Equal(t, start.AddDate(0, 0, 3), end)

	_, ok = d.ExpectedEnd(Aborted, start, "", 0)
	assert.False(t, ok)
}

func TestLoadDurationsCSV(t *testing.T) {
	stages := writeFile(t, "stages.csv", "\uFEFFStage,Expected Days,Notes\n"+
		"colonization,14,keep dark\n"+
		"fruiting,abc,\n"+
		"completed,5,\n"+
		"unknown,4,\n")
	adjust := writeFile(t, "adjust.csv", "species,factor\nlions-mane,1.5\noyster,0.5\nbad,x\n")

	d, err := LoadDurations(stages, adjust)
	require.NoError(t, err)

	assert.Equal(t, 14, d.Days(Colonization, "", 0))
	assert.Equal(t, "keep dark", d.Note(Colonization))
	assert.Equal(t, 10, d.Days(Fruiting, "", 0), "invalid rows keep the default")
	assert.Equal(t, 21, d.Days(Colonization, "lions-mane", 0))
	assert.Equal(t, 7, d.Days(Colonization, "Oyster", 0))
	assert.Equal(t, 9, d.Days(Colonization, "oyster", 9), "strain value wins")
}

func TestLoadDurationsMissingColumns(t *testing.T) {
	stages := writeFile(t, "stages.csv", "phase,notes\nspawning,x\n")
	_, err := LoadDurations(stages, "")
	assert.Error(t, err)
}

func TestLoadDurationsXLSX(t *testing.T) {
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	rows := [][]any{{"Stage", "Days"}, {"Spawning", 5}, {"Harvesting", 12}}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, x.SetSheetRow(sheet, cell, &r))
	}
	p := filepath.Join(t.TempDir(), "stages.xlsx")
	require.NoError(t, x.SaveAs(p))

	d, err := LoadDurations(p, "")
	require.NoError(t, err)
	assert.Equal(t, 5, d.Days(Spawning, "", 0))
	assert.Equal(t, 12, d.Days(Harvesting, "", 0))
	assert.Equal(t, 21, d.Days(Colonization, "", 0))
}
