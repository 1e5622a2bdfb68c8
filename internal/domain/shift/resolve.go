package shift

import (
	"github.com/turnos-app/turnos-backend-go/internal/domain/roster"
)

// Resolve returns the stored assignment for (workerID, day), or the default
// off-assignment when none exists. Total over all inputs.
func Resolve(m Map, workerID, day string) Assignment {
	if a, ok := m[Key{WorkerID: workerID, Day: day}]; ok {
		return a
	}
	return Default()
}

// RestingWorkers returns every worker resolved to an off-assignment on the
// given day, in roster order.
func RestingWorkers(workers []roster.Worker, m Map, day string) []roster.Worker {
	out := make([]roster.Worker, 0)
	for _, w := range workers {
		if Resolve(m, w.ID, day).Type == TypeOff {
			out = append(out, w)
		}
	}
	return out
}

// RelieverFor finds the worker covering resting's day off: a reliever-capable
// worker whose non-off assignment names resting's id. When several qualify the
// first in roster order wins; the ambiguity is tolerated, not an error. A
// coverage reference that points nowhere simply yields no reliever.
func RelieverFor(resting roster.Worker, workers []roster.Worker, m Map, day string) (roster.Worker, bool) {
	for _, w := range workers {
		if !w.IsReliever {
			continue
		}
		a := Resolve(m, w.ID, day)
		if a.Type == TypeOff {
			continue
		}
		if a.CoveringID == resting.ID {
			return w, true
		}
	}
	return roster.Worker{}, false
}
