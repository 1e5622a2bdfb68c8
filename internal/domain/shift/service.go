package shift

import "context"

type ScheduleService interface {
	// GetWeekAssignments returns the raw sparse assignments for the week
	// containing the given day (the grid view needs them as stored).
	GetWeekAssignments(ctx context.Context, day string) (WeekAssignmentsResponse, error)
	// GetWeekView returns the aggregated rest/coverage and summary view.
	GetWeekView(ctx context.Context, day string) (WeekViewResponse, error)
	AssignShift(ctx context.Context, req AssignShiftRequest) (AssignmentResponse, error)
	RemoveShift(ctx context.Context, workerID, day string) error
	// ClearWeek wipes every worker's assignments for the week containing day.
	ClearWeek(ctx context.Context, day string) error
}
