package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const checkTimeout = 800 * time.Millisecond

// Check is one named dependency check.
type Check struct {
	Name string
	Fn   func(ctx context.Context) error
}

func DBCheck(db *gorm.DB) Check {
	return Check{Name: "database", Fn: func(ctx context.Context) error {
		if db == nil {
			return errors.New("gorm db is nil")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}}
}

// DirCheck verifies the local upload directory exists.
func DirCheck(name, dir string) Check {
	return Check{Name: name, Fn: func(context.Context) error {
		st, err := os.Stat(dir)
		if err != nil {
			return err
		}
		if !st.IsDir() {
			return errors.New(dir + " is not a directory")
		}
		return nil
	}}
}

type HealthCtrl struct {
	checks  []Check
	started time.Time
	now     func() time.Time
}

func NewHealthCtrl(checks ...Check) *HealthCtrl {
	return &HealthCtrl{checks: checks, started: time.Now(), now: time.Now}
}

type result struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
	defer cancel()

	allOK := true
	checks := make(map[string]result, len(h.checks))
	for _, ch := range h.checks {
		r := result{OK: true}
		if err := ch.Fn(ctx); err != nil {
			r = result{Err: err.Error()}
			allOK = false
		}
		checks[ch.Name] = r
	}

	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	now := h.now()
	return c.JSON(status, echo.Map{
		"ok":         allOK,
		"uptime_sec": int(now.Sub(h.started).Seconds()),
		"checks":     checks,
		"time":       now.UTC().Format(time.RFC3339),
	})
}
