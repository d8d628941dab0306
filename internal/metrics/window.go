// ABOUTME: Day-granularity date windows and session volume aggregation.
// ABOUTME: Windows include the whole end day; volume is the sum of weight x reps.
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// DateLayout is the calendar-date format used in exports and trend points.
const DateLayout = "2006-01-02"

// Window is an inclusive range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a window covering start's day through end's day.
func NewWindow(start, end time.Time) Window {
	return Window{Start: start, End: end}
}

// LastNDays returns the window of n calendar days ending today (n=7 covers today
// and the six days before it).
func LastNDays(now time.Time, n int) Window {
	if n < 1 {
		n = 1
	}
	return Window{Start: startOfDay(now).AddDate(0, 0, -(n - 1)), End: now}
}

// StartOfWeek returns midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}

// Contains reports whether t falls on a day inside the window. Days are taken in
// the location of the window's start.
func (w Window) Contains(t time.Time) bool {
	loc := w.Start.Location()
	from := startOfDay(w.Start)
	until := startOfDay(w.End.In(loc)).AddDate(0, 0, 1)
	t = t.In(loc)
	return !t.Before(from) && t.Before(until)
}

// StartDate returns the window's first day as YYYY-MM-DD.
func (w Window) StartDate() string {
	return FormatDate(w.Start)
}

// EndDate returns the window's last day as YYYY-MM-DD, in the start's location.
func (w Window) EndDate() string {
	return FormatDate(w.End.In(w.Start.Location()))
}

// SessionsInWindow returns the sessions dated inside w, preserving order.
func SessionsInWindow(sessions []models.Session, w Window) []models.Session {
	var out []models.Session
	for _, s := range sessions {
		if w.Contains(s.DateISO) {
			out = append(out, s)
		}
	}
	return out
}

// WindowVolume sums weight x reps over every set of every session dated
// between start's day and end's day inclusive.
func WindowVolume(sessions []models.Session, start, end time.Time) float64 {
	w := NewWindow(start, end)
	var total float64
	for _, s := range sessions {
		if !w.Contains(s.DateISO) {
			continue
		}
		total += EntriesVolume(s.Entries)
	}
	return total
}

// EntriesVolume sums weight x reps over all sets of the entries.
func EntriesVolume(entries []models.Entry) float64 {
	var total float64
	for _, e := range entries {
		for _, set := range e.Sets {
			total += set.Volume()
		}
	}
	return total
}

// FilterByProfile returns the sessions owned by profileID, preserving order.
func FilterByProfile(sessions []models.Session, profileID string) []models.Session {
	var out []models.Session
	for _, s := range sessions {
		if s.ProfileID == profileID {
			out = append(out, s)
		}
	}
	return out
}

// SortNewestFirst returns a copy of sessions ordered by date, most recent first.
func SortNewestFirst(sessions []models.Session) []models.Session {
	out := append([]models.Session(nil), sessions...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateISO.After(out[j].DateISO)
	})
	return out
}

// SortOldestFirst returns a copy of sessions ordered by date, oldest first.
func SortOldestFirst(sessions []models.Session) []models.Session {
	out := append([]models.Session(nil), sessions...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateISO.Before(out[j].DateISO)
	})
	return out
}

// ParseDate reads YYYY-MM-DD as midnight in loc, or a full RFC 3339 timestamp.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
