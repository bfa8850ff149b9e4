package serviceImp

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/dates"
	"mycolab/pkg/grow/repositoryImp"
	"mycolab/pkg/testutil"
)

type stubStrains struct{ calls int }

func (s *stubStrains) GetStrain(id uint) (*entities.Strain, error) {
	s.calls++
	if id != 1 {
		return nil, apperr.NotFound("strain")
	}
	return &entities.Strain{StrainID: 1, Name: "Blue Oyster"}, nil
}

func TestWriteGrows(t *testing.T) {
	db := testutil.OpenDB(t)
	day := func(d int) time.Time { return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC) }
	strain := uint(1)
	dry := 2000.0
	a := &entities.Grow{UserID: "u1", Name: "Tub A", StrainID: &strain, Stage: "harvesting", SubstrateDryWeightG: &dry, InoculatedAt: day(1), StageChangedAt: day(20)}
	b := &entities.Grow{UserID: "u1", Name: "Tub B", StrainID: &strain, Stage: "spawning", InoculatedAt: day(10), StageChangedAt: day(10)}
	other := &entities.Grow{UserID: "u2", Name: "Not mine", Stage: "spawning", InoculatedAt: day(2), StageChangedAt: day(2)}
	for _, g := range []*entities.Grow{a, b, other} {
		require.NoError(t, db.Create(g).Error)
	}
	fdry := 45.5
	require.NoError(t, db.Create(&entities.Flush{GrowID: a.GrowID, Number: 1, HarvestedAt: day(22), WetWeightG: 600, DryWeightG: &fdry}).Error)
	require.NoError(t, db.Create(&entities.Flush{GrowID: a.GrowID, Number: 2, HarvestedAt: day(29), WetWeightG: 400}).Error)

	strains := &stubStrains{}
	s := NewExportService(repositoryImp.New(db), strains, dates.Fixed(time.UTC)).(*exportSvc)
	s.now = func() time.Time { return day(31) }

	var buf bytes.Buffer
	require.NoError(t, s.WriteGrows(&buf, "u1"))

	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()
	assert.Equal(t, []string{"Grows", "Flushes"}, x.GetSheetList())

	t.Run("should list one row per grow", func(t *testing.T) {
		rows, err := x.GetRows("Grows")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Grow ID", rows[0][0])
		// newest inoculation first
		assert.Equal(t, "Tub B", rows[1][1])
		assert.Equal(t, []string{"Tub A", "Blue Oyster", "harvesting", "2025-05-01", "30", "2", "1000", "50"}, rows[2][1:])
		assert.Equal(t, 1, strains.calls)
	})

	t.Run("should list every flush", func(t *testing.T) {
		rows, err := x.GetRows("Flushes")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Tub A", "1", "2025-05-22", "600", "45.5"}, rows[1])
		assert.Equal(t, []string{"Tub A", "2", "2025-05-29", "400"}, rows[2])
	})
}

func TestWriteGrowsEmpty(t *testing.T) {
	s := NewExportService(repositoryImp.New(testutil.OpenDB(t)), nil, nil)
	var buf bytes.Buffer
	require.NoError(t, s.WriteGrows(&buf, "nobody"))
	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows("Grows")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
