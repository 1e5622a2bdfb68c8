package schedule

import (
	"context"
	"fmt"

	"github.com/turnos-app/turnos-backend-go/internal/domain/roster"
	"github.com/turnos-app/turnos-backend-go/internal/domain/shift"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/dateutil"
)

type scheduleServiceImpl struct {
	workerRepo     roster.WorkerRepository
	assignmentRepo shift.AssignmentRepository
}

func NewScheduleService(
	workerRepo roster.WorkerRepository,
	assignmentRepo shift.AssignmentRepository,
) shift.ScheduleService {
	return &scheduleServiceImpl{
		workerRepo:     workerRepo,
		assignmentRepo: assignmentRepo,
	}
}

func windowFor(day string) (dateutil.WeekWindow, error) {
	ref, err := dateutil.ParseDayKey(day)
	if err != nil {
		return dateutil.WeekWindow{}, shift.ErrInvalidDay
	}
	return dateutil.NewWeekWindow(ref), nil
}

// GetWeekAssignments implements shift.ScheduleService.
func (s *scheduleServiceImpl) GetWeekAssignments(ctx context.Context, day string) (shift.WeekAssignmentsResponse, error) {
	window, err := windowFor(day)
	if err != nil {
		return shift.WeekAssignmentsResponse{}, err
	}

	m, err := s.assignmentRepo.GetWindow(ctx, window)
	if err != nil {
		return shift.WeekAssignmentsResponse{}, fmt.Errorf("failed to load week assignments: %w", err)
	}

	resp := shift.WeekAssignmentsResponse{
		WeekID:      window.WeekID,
		Days:        window.Days[:],
		Assignments: make([]shift.AssignmentResponse, 0, len(m)),
	}

	// emit in window/roster order for a stable payload
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return shift.WeekAssignmentsResponse{}, fmt.Errorf("failed to load roster: %w", err)
	}
	for _, day := range window.Days {
		for _, w := range workers {
			key := shift.Key{WorkerID: w.ID, Day: day}
			a, ok := m[key]
			if !ok {
				continue
			}
			resp.Assignments = append(resp.Assignments, shift.AssignmentResponse{
				WorkerID:   key.WorkerID,
				Day:        key.Day,
				Type:       string(a.Type),
				Place:      a.Place,
				CoveringID: a.CoveringID,
			})
		}
	}

	return resp, nil
}

// GetWeekView implements shift.ScheduleService. Archived workers are not part
// of the aggregation.
func (s *scheduleServiceImpl) GetWeekView(ctx context.Context, day string) (shift.WeekViewResponse, error) {
	window, err := windowFor(day)
	if err != nil {
		return shift.WeekViewResponse{}, err
	}

	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return shift.WeekViewResponse{}, fmt.Errorf("failed to load roster: %w", err)
	}

	m, err := s.assignmentRepo.GetWindow(ctx, window)
	if err != nil {
		return shift.WeekViewResponse{}, fmt.Errorf("failed to load week assignments: %w", err)
	}

	view := shift.AggregateWeek(roster.Visible(workers, false), m, window)
	return shift.ToWeekViewResponse(view), nil
}

// AssignShift implements shift.ScheduleService.
func (s *scheduleServiceImpl) AssignShift(ctx context.Context, req shift.AssignShiftRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return shift.AssignmentResponse{}, err
	}

	assignment := shift.Assignment{
		Type:       shift.ShiftType(req.Type),
		Place:      req.Place,
		CoveringID: req.CoveringID,
	}
	// non-working types carry no place or coverage
	if !assignment.Type.IsWorking() {
		assignment.Place = ""
		assignment.CoveringID = ""
	}

	key := shift.Key{WorkerID: req.WorkerID, Day: req.Day}
	if err := s.assignmentRepo.Upsert(ctx, key, assignment); err != nil {
		return shift.AssignmentResponse{}, err
	}

	return shift.AssignmentResponse{
		WorkerID:   key.WorkerID,
		Day:        key.Day,
		Type:       string(assignment.Type),
		Place:      assignment.Place,
		CoveringID: assignment.CoveringID,
	}, nil
}

// RemoveShift implements shift.ScheduleService. Removing a missing entry is a
// no-op, the day just falls back to the off-default.
func (s *scheduleServiceImpl) RemoveShift(ctx context.Context, workerID, day string) error {
	if _, err := dateutil.ParseDayKey(day); err != nil {
		return shift.ErrInvalidDay
	}
	return s.assignmentRepo.Delete(ctx, shift.Key{WorkerID: workerID, Day: day})
}

// ClearWeek implements shift.ScheduleService. Irreversible; the caller is
// expected to have confirmed.
func (s *scheduleServiceImpl) ClearWeek(ctx context.Context, day string) error {
	window, err := windowFor(day)
	if err != nil {
		return err
	}

	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	ids := make([]string, 0, len(workers))
	for _, w := range workers {
		ids = append(ids, w.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	return s.assignmentRepo.DeleteWindow(ctx, ids, window)
}
