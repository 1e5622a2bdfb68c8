package roster

import (
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos-backend-go/internal/pkg/validator"
)

// The functions in this file never mutate their input slice. Callers get a
// fresh snapshot back and can replace their copy wholesale.

func indexOf(workers []Worker, id string) int {
	for i, w := range workers {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func clone(workers []Worker) []Worker {
	out := make([]Worker, len(workers))
	copy(out, workers)
	return out
}

// Move removes the worker with sourceID and reinserts it directly before the
// worker with targetID. Equal ids or an id that is not in the roster make this
// a no-op, and repeating the same move leaves the order unchanged.
func Move(workers []Worker, sourceID, targetID string) []Worker {
	if sourceID == targetID {
		return clone(workers)
	}

	srcIdx := indexOf(workers, sourceID)
	if srcIdx == -1 || indexOf(workers, targetID) == -1 {
		return clone(workers)
	}

	out := clone(workers)
	moved := out[srcIdx]
	out = append(out[:srcIdx], out[srcIdx+1:]...)

	// the insertion slot is the target's index in the list without the moved
	// worker, which keeps re-applying the same move stable
	tgtIdx := indexOf(out, targetID)
	rest := make([]Worker, 0, len(workers))
	rest = append(rest, out[:tgtIdx]...)
	rest = append(rest, moved)
	rest = append(rest, out[tgtIdx:]...)
	return rest
}

// ToggleArchive flips IsActive for the matching worker, leaving order and all
// other fields untouched. Unknown ids are tolerated silently.
func ToggleArchive(workers []Worker, workerID string) []Worker {
	out := clone(workers)
	for i := range out {
		if out[i].ID == workerID {
			out[i].IsActive = !out[i].IsActive
			out[i].UpdatedAt = time.Now()
			break
		}
	}
	return out
}

// WorkerDraft carries the caller-supplied fields for a new roster entry.
type WorkerDraft struct {
	Name       string
	ShortName  string
	NationalID string
	Role       string
	Site       string
	Place      string
	IsReliever bool
}

func (d WorkerDraft) validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(d.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(d.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Add appends a new worker with a fresh time-ordered id and a palette color
// picked by the current roster size. Returns the unchanged input and an error
// when required fields are missing.
func Add(workers []Worker, draft WorkerDraft) ([]Worker, Worker, error) {
	if err := draft.validate(); err != nil {
		return workers, Worker{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return workers, Worker{}, err
	}

	now := time.Now()
	created := Worker{
		ID:         id.String(),
		Name:       draft.Name,
		ShortName:  draft.ShortName,
		NationalID: draft.NationalID,
		Role:       draft.Role,
		Site:       draft.Site,
		Place:      draft.Place,
		Color:      Palette[len(workers)%len(Palette)],
		IsReliever: draft.IsReliever,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	out := clone(workers)
	return append(out, created), created, nil
}

// Delete permanently removes the matching worker. No-op if the id is absent.
func Delete(workers []Worker, workerID string) []Worker {
	idx := indexOf(workers, workerID)
	if idx == -1 {
		return clone(workers)
	}
	out := make([]Worker, 0, len(workers)-1)
	out = append(out, workers[:idx]...)
	out = append(out, workers[idx+1:]...)
	return out
}

// Visible filters the roster by archive state, preserving relative order.
func Visible(workers []Worker, showArchived bool) []Worker {
	out := make([]Worker, 0, len(workers))
	for _, w := range workers {
		if w.IsActive != showArchived {
			out = append(out, w)
		}
	}
	return out
}
