package dateutil

import (
	"errors"
	"time"
)

// DayKeyLayout is the canonical local calendar-day key format.
const DayKeyLayout = "2006-01-02"

var ErrBadWindow = errors.New("week window must contain exactly 7 consecutive days starting on a Monday")

// DayKey formats t as its local calendar day, independent of the clock time.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key into a local-midnight time.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, key, time.Local)
}

// AddDays returns the day key offset by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDayKey(key)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, n)), nil
}

// WeekWindow is the Monday-start 7-day span containing a reference date.
// WeekID is the key of its first day and identifies the week everywhere
// (checklist storage, report scope).
type WeekWindow struct {
	WeekID string
	Days   [7]string
}

// NewWeekWindow computes the window containing ref. Always Monday-start,
// regardless of the platform's week-start convention.
func NewWeekWindow(ref time.Time) WeekWindow {
	// time.Weekday puts Sunday at 0; shift so Monday is 0.
	offset := (int(ref.Weekday()) + 6) % 7
	monday := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).AddDate(0, 0, -offset)

	var w WeekWindow
	for i := 0; i < 7; i++ {
		w.Days[i] = DayKey(monday.AddDate(0, 0, i))
	}
	w.WeekID = w.Days[0]
	return w
}

// ParseWeekWindow validates a caller-supplied window. Used when a window
// arrives over the wire rather than being derived from a reference date.
func ParseWeekWindow(days []string) (WeekWindow, error) {
	if len(days) != 7 {
		return WeekWindow{}, ErrBadWindow
	}
	start, err := ParseDayKey(days[0])
	if err != nil {
		return WeekWindow{}, ErrBadWindow
	}
	if start.Weekday() != time.Monday {
		return WeekWindow{}, ErrBadWindow
	}
	var w WeekWindow
	for i := 0; i < 7; i++ {
		expected := DayKey(start.AddDate(0, 0, i))
		if days[i] != expected {
			return WeekWindow{}, ErrBadWindow
		}
		w.Days[i] = days[i]
	}
	w.WeekID = w.Days[0]
	return w, nil
}

// Contains reports whether key falls inside the window.
func (w WeekWindow) Contains(key string) bool {
	for _, d := range w.Days {
		if d == key {
			return true
		}
	}
	return false
}

// Start returns the window's first day as a time value.
func (w WeekWindow) Start() time.Time {
	t, _ := ParseDayKey(w.Days[0])
	return t
}

// End returns the window's last day as a time value.
func (w WeekWindow) End() time.Time {
	t, _ := ParseDayKey(w.Days[6])
	return t
}
