// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mycolab/entities"
)

type slogWriter struct{}

func (slogWriter) Printf(format string, args ...any) {
	slog.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Models lists every table the application owns, in creation order.
func Models() []any {
	return []any{
		&entities.UserProfile{},
		&entities.AppSettings{},
		&entities.Species{},
		&entities.Strain{},
		&entities.Culture{},
		&entities.Grow{},
		&entities.Flush{},
		&entities.GrowStageEvent{},
		&entities.Observation{},
		&entities.InventoryItem{},
		&entities.Suggestion{},
		&entities.Notification{},
		&entities.ChatMessage{},
	}
}

func dsn(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

// OpenSQLite opens the database and brings the schema up to date.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger: logger.New(slogWriter{}, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}
	// one writer at a time; sqlite serialises writes anyway
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the legacy data fixes and then AutoMigrate.
func Migrate(db *gorm.DB) error {
	// must run BEFORE AutoMigrate, otherwise gorm adds an empty stage column next to status
	if err := migrateGrowStatusToStage(db); err != nil {
		return fmt.Errorf("migrate grows: %w", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// legacyStages maps stage labels written by older clients to the current ones.
var legacyStages = map[string]string{
	"inoculated":  "spawning",
	"incubation":  "colonization",
	"incubating":  "colonization",
	"pinning":     "fruiting",
	"fruit":       "fruiting",
	"harvest":     "harvesting",
	"done":        "completed",
	"finished":    "completed",
	"contam":      "contaminated",
	"cancelled":   "aborted",
	"canceled":    "aborted",
}

// migrateGrowStatusToStage renames the old grows.status column to stage and
// rewrites legacy stage labels.
func migrateGrowStatusToStage(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='grows'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(grows)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	has := map[string]bool{}
	for _, c := range cols {
		has[strings.ToLower(c.Name)] = true
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if has["status"] && !has["stage"] {
			if err := tx.Exec(`ALTER TABLE grows RENAME COLUMN status TO stage`).Error; err != nil {
				return err
			}
			has["stage"] = true
		}
		if !has["stage"] {
			return nil
		}
		for old, cur := range legacyStages {
			if err := tx.Exec(`UPDATE grows SET stage = ? WHERE lower(stage) = ?`, cur, old).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
