package database

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mycolab/entities"
)

func TestOpenSQLite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)

	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m), "%T table missing", m)
	}
}

func TestMigrateGrowStatusToStage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, legacy.Exec(`CREATE TABLE grows (grow_id INTEGER PRIMARY KEY AUTOINCREMENT, user_id TEXT, name TEXT, status TEXT)`).Error)
	require.NoError(t, legacy.Exec(`INSERT INTO grows (user_id, name, status) VALUES ('u1', 'oyster tub', 'Incubation'), ('u1', 'lions mane', 'fruiting'), ('u1', 'old', 'done')`).Error)
	sqlDB, _ := legacy.DB()
	require.NoError(t, sqlDB.Close())

	db, err := OpenSQLite(path)
	require.NoError(t, err)

	var grows []entities.Grow
	require.NoError(t, db.Order("grow_id").Find(&grows).Error)
	require.Len(t, grows, 3)
	assert.Equal(t, "colonization", grows[0].Stage)
	assert.Equal(t, "fruiting", grows[1].Stage)
	assert.Equal(t, "completed", grows[2].Stage)
	assert.False(t, db.Migrator().HasColumn(&entities.Grow{}, "status"))
}
