package report

import (
	"fmt"
	"strings"
	"time"
)

const (
	PeriodDay    = "day"
	PeriodMonth  = "month"
	PeriodYear   = "year"
	PeriodCustom = "custom"

	dateLayout = "2006-01-02"
	openBound  = "open"
)

// PeriodConfig is the cache partition descriptor of a date range. The same range
// always produces the same PeriodKey.
type PeriodConfig struct {
	PeriodType string `json:"periodType"`
	PeriodKey  string `json:"periodKey"`
	Year       int    `json:"year"`
	Month      *int   `json:"month,omitempty"`
}

// ParseReportDate accepts YYYY-MM-DD or RFC3339. An empty string means "no bound".
func ParseReportDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, raw)
}

// BuildPeriodConfig classifies [start, end] as a single day, calendar month, calendar
// year or a custom range. Time-of-day components are ignored.
func BuildPeriodConfig(start, end *time.Time) (PeriodConfig, error) {
	if (start != nil && start.IsZero()) || (end != nil && end.IsZero()) {
		return PeriodConfig{}, fmt.Errorf("%w: zero time", ErrInvalidDate)
	}

	if start == nil || end == nil {
		cfg := PeriodConfig{
			PeriodType: PeriodCustom,
			PeriodKey:  "custom:" + boundKey(start) + "_to_" + boundKey(end),
		}
		switch {
		case start != nil:
			cfg.Year = start.Year()
		case end != nil:
			cfg.Year = end.Year()
		}
		return cfg, nil
	}

	s, e := dateOnly(*start), dateOnly(*end)

	if s.Equal(e) {
		return PeriodConfig{PeriodType: PeriodDay, PeriodKey: s.Format(dateLayout), Year: s.Year()}, nil
	}

	if s.Day() == 1 && s.Year() == e.Year() && s.Month() == e.Month() && e.Day() == daysIn(e.Year(), e.Month()) {
		month := int(s.Month())
		return PeriodConfig{
			PeriodType: PeriodMonth,
			PeriodKey:  s.Format("2006-01"),
			Year:       s.Year(),
			Month:      &month,
		}, nil
	}

	if s.Year() == e.Year() && s.Month() == time.January && s.Day() == 1 && e.Month() == time.December && e.Day() == 31 {
		return PeriodConfig{PeriodType: PeriodYear, PeriodKey: s.Format("2006"), Year: s.Year()}, nil
	}

	return PeriodConfig{
		PeriodType: PeriodCustom,
		PeriodKey:  "custom:" + s.Format(dateLayout) + "_to_" + e.Format(dateLayout),
		Year:       s.Year(),
	}, nil
}

// MonthPeriod is the month period containing t.
func MonthPeriod(t time.Time) (PeriodConfig, DateWindow) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := time.Date(t.Year(), t.Month(), daysIn(t.Year(), t.Month()), 0, 0, 0, 0, t.Location())
	cfg, _ := BuildPeriodConfig(&first, &last)
	return cfg, NewDateWindow(&first, &last)
}

func boundKey(t *time.Time) string {
	if t == nil {
		return openBound
	}
	return t.Format(dateLayout)
}

// dateOnly keeps the calendar date of t as seen in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateWindow is an inclusive date range; nil bounds are open.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// NewDateWindow widens start to the beginning and end to the last instant of their days.
func NewDateWindow(start, end *time.Time) DateWindow {
	var w DateWindow
	if start != nil {
		s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		w.Start = &s
	}
	if end != nil {
		e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())
		w.End = &e
	}
	return w
}

// Overlaps reports whether [from, to] intersects the window.
func (w DateWindow) Overlaps(from, to time.Time) bool {
	if w.End != nil && from.After(*w.End) {
		return false
	}
	if w.Start != nil && to.Before(*w.Start) {
		return false
	}
	return true
}
