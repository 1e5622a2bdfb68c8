package shift

import (
	"github.com/turnos-app/turnos-backend-go/internal/domain/roster"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/dateutil"
)

// RestEntry is one resting worker on one day, with the reliever covering the
// day off when one was resolved.
type RestEntry struct {
	Worker   roster.Worker
	Reliever *roster.Worker
}

// DayView groups a single day's rest entries.
type DayView struct {
	Day     string
	Resting []RestEntry
}

// SummaryRow lists one worker's distinct places for a shift type across the
// week, in first-occurrence order.
type SummaryRow struct {
	Worker roster.Worker
	Places []string
}

// WeekView is the aggregation of a week window: rest/coverage per day plus the
// per-shift-type roster summary.
type WeekView struct {
	Window  dateutil.WeekWindow
	Days    [7]DayView
	Summary map[ShiftType][]SummaryRow
}

// AggregateWeek folds the window into a WeekView. Pure: identical inputs give
// structurally equal output.
func AggregateWeek(workers []roster.Worker, m Map, window dateutil.WeekWindow) WeekView {
	view := WeekView{
		Window:  window,
		Summary: make(map[ShiftType][]SummaryRow),
	}

	for i, day := range window.Days {
		dv := DayView{Day: day, Resting: []RestEntry{}}
		for _, w := range RestingWorkers(workers, m, day) {
			entry := RestEntry{Worker: w}
			if reliever, ok := RelieverFor(w, workers, m, day); ok {
				r := reliever
				entry.Reliever = &r
			}
			dv.Resting = append(dv.Resting, entry)
		}
		view.Days[i] = dv
	}

	for _, st := range WorkingTypes {
		rows := summarize(workers, m, window, st)
		if len(rows) > 0 {
			view.Summary[st] = rows
		}
	}

	return view
}

// summarize collects, in roster order, each worker who held the shift type on
// any day of the window, with duplicate places collapsed. Workers with no
// recorded place for the type are left out.
func summarize(workers []roster.Worker, m Map, window dateutil.WeekWindow, st ShiftType) []SummaryRow {
	rows := make([]SummaryRow, 0)
	for _, w := range workers {
		var places []string
		seen := make(map[string]bool)
		for _, day := range window.Days {
			a := Resolve(m, w.ID, day)
			if a.Type != st || a.Place == "" {
				continue
			}
			if !seen[a.Place] {
				seen[a.Place] = true
				places = append(places, a.Place)
			}
		}
		if len(places) > 0 {
			rows = append(rows, SummaryRow{Worker: w, Places: places})
		}
	}
	return rows
}

// ClearWeek removes every assignment of every given worker for every day in
// the window, returning a new map. Entries outside the window are kept.
func ClearWeek(m Map, workers []roster.Worker, window dateutil.WeekWindow) Map {
	out := m.Clone()
	for _, w := range workers {
		for _, day := range window.Days {
			delete(out, Key{WorkerID: w.ID, Day: day})
		}
	}
	return out
}
