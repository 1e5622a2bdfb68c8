package report

import (
	"context"
	"fmt"

	"github.com/turnos-app/turnos-backend-go/internal/domain/checklist"
	domain "github.com/turnos-app/turnos-backend-go/internal/domain/report"
	"github.com/turnos-app/turnos-backend-go/internal/domain/roster"
	"github.com/turnos-app/turnos-backend-go/internal/domain/shift"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/dateutil"
)

type reportServiceImpl struct {
	workerRepo     roster.WorkerRepository
	assignmentRepo shift.AssignmentRepository
	checklistRepo  checklist.ChecklistRepository
	defaultSite    string
}

func NewReportService(
	workerRepo roster.WorkerRepository,
	assignmentRepo shift.AssignmentRepository,
	checklistRepo checklist.ChecklistRepository,
	defaultSite string,
) domain.ReportService {
	return &reportServiceImpl{
		workerRepo:     workerRepo,
		assignmentRepo: assignmentRepo,
		checklistRepo:  checklistRepo,
		defaultSite:    defaultSite,
	}
}

// GenerateWeekReport implements report.ReportService.
func (s *reportServiceImpl) GenerateWeekReport(ctx context.Context, req domain.WeekReportRequest) (domain.WeekReportResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.WeekReportResponse{}, err
	}

	ref, err := dateutil.ParseDayKey(req.Day)
	if err != nil {
		return domain.WeekReportResponse{}, shift.ErrInvalidDay
	}
	window := dateutil.NewWeekWindow(ref)

	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return domain.WeekReportResponse{}, fmt.Errorf("failed to load roster: %w", err)
	}

	m, err := s.assignmentRepo.GetWindow(ctx, window)
	if err != nil {
		return domain.WeekReportResponse{}, fmt.Errorf("failed to load week assignments: %w", err)
	}

	items, err := s.checklistRepo.GetWeek(ctx, window.WeekID)
	if err != nil {
		return domain.WeekReportResponse{}, fmt.Errorf("failed to load week checklist: %w", err)
	}

	view := shift.AggregateWeek(roster.Visible(workers, false), m, window)
	text := domain.Format(view, window, req.Resolve(), s.defaultSite, items)

	return domain.WeekReportResponse{
		WeekID: window.WeekID,
		Text:   text,
	}, nil
}
