package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/turnos-app/turnos-backend-go/internal/domain/shift"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/database"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/dateutil"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// GetWindow implements shift.AssignmentRepository. Days with no stored row
// simply have no map entry; resolution fills in the off-default.
func (r *assignmentRepositoryImpl) GetWindow(ctx context.Context, window dateutil.WeekWindow) (shift.Map, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT worker_id, day, type, place, covering_id
		FROM shift_assignments
		WHERE day BETWEEN $1 AND $2
	`

	rows, err := q.Query(ctx, query, window.Start(), window.End())
	if err != nil {
		return nil, fmt.Errorf("failed to get week assignments: %w", err)
	}
	defer rows.Close()

	m := make(shift.Map)
	for rows.Next() {
		var (
			workerID   string
			day        time.Time
			shiftType  string
			place      string
			coveringID *string
		)
		if err := rows.Scan(&workerID, &day, &shiftType, &place, &coveringID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}

		a := shift.Assignment{
			Type:  shift.ShiftType(shiftType),
			Place: place,
		}
		if coveringID != nil {
			a.CoveringID = *coveringID
		}
		m[shift.Key{WorkerID: workerID, Day: dateutil.DayKey(day)}] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignments: %w", err)
	}

	return m, nil
}

// Upsert implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Upsert(ctx context.Context, key shift.Key, assignment shift.Assignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (worker_id, day, type, place, covering_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (worker_id, day)
		DO UPDATE SET type = $3, place = $4, covering_id = $5, updated_at = NOW()
	`

	var coveringID *string
	if assignment.CoveringID != "" {
		coveringID = &assignment.CoveringID
	}

	day, err := dateutil.ParseDayKey(key.Day)
	if err != nil {
		return shift.ErrInvalidDay
	}

	if _, err := q.Exec(ctx, query, key.WorkerID, day, string(assignment.Type), assignment.Place, coveringID); err != nil {
		return fmt.Errorf("failed to upsert assignment: %w", err)
	}

	return nil
}

// Delete implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, key shift.Key) error {
	q := GetQuerier(ctx, r.db)

	day, err := dateutil.ParseDayKey(key.Day)
	if err != nil {
		return shift.ErrInvalidDay
	}

	if _, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE worker_id = $1 AND day = $2`, key.WorkerID, day); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}

// DeleteWindow implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) DeleteWindow(ctx context.Context, workerIDs []string, window dateutil.WeekWindow) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM shift_assignments
		WHERE worker_id = ANY($1) AND day BETWEEN $2 AND $3
	`

	if _, err := q.Exec(ctx, query, workerIDs, window.Start(), window.End()); err != nil {
		return fmt.Errorf("failed to clear week assignments: %w", err)
	}

	return nil
}
