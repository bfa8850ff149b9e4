// Package dates parses the calendar dates the API accepts and does
// day-granular arithmetic in a user's timezone.
package dates

import (
	"math"
	"strings"
	"time"

	"mycolab/pkg/apperr"
)

const Layout = "2006-01-02"

// Parse accepts YYYY-MM-DD or RFC3339. A bare date is midnight of that
// calendar day in loc; nil loc means UTC.
func Parse(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(Layout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperr.Invalid("bad date %q", s)
	}
	return t, nil
}

// ParseOr parses s, or returns def when s is empty.
func ParseOr(s string, def time.Time, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return Parse(s, loc)
}

// ParsePtr parses an optional date; nil and "" give nil.
func ParsePtr(s *string, loc *time.Location) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := Parse(*s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Zones resolves the timezone a user's calendar dates are kept in.
type Zones interface {
	Location(uid string) *time.Location
}

type fixed struct{ loc *time.Location }

func (f fixed) Location(string) *time.Location { return f.loc }

// Fixed puts every user in loc (UTC when nil).
func Fixed(loc *time.Location) Zones {
	if loc == nil {
		loc = time.UTC
	}
	return fixed{loc}
}

// Location resolves an IANA zone name, falling back to UTC.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Day truncates t to midnight in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DaysBetween counts whole calendar days from a to b in loc (negative when b
// is before a).
func DaysBetween(a, b time.Time, loc *time.Location) int {
	da, db := Day(a, loc), Day(b, loc)
	return int(math.Round(db.Sub(da).Hours() / 24))
}
