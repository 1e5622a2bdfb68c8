package report

import "context"

type ReportService interface {
	// GenerateWeekReport builds the shareable text for the week containing
	// the request's day.
	GenerateWeekReport(ctx context.Context, req WeekReportRequest) (WeekReportResponse, error)
}
