package http

import (
	"net/http"

	"github.com/turnos-app/turnos-backend-go/internal/domain/report"
	"github.com/turnos-app/turnos-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetWeekReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func (h *reportHandlerImpl) GetWeekReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := report.WeekReportRequest{
		Day:              query.Get("date"),
		ShowHeader:       boolParam(query.Get("show_header")),
		ShowDays:         boolParam(query.Get("show_days")),
		ShowLocation:     boolParam(query.Get("show_location")),
		ShowReliever:     boolParam(query.Get("show_reliever")),
		ShowShiftSummary: boolParam(query.Get("show_shift_summary")),
		UseShortName:     boolParam(query.Get("use_short_name")),
	}

	result, err := h.reportService.GenerateWeekReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// boolParam keeps absent parameters as "use the baseline".
func boolParam(v string) *bool {
	switch v {
	case "true":
		t := true
		return &t
	case "false":
		f := false
		return &f
	default:
		return nil
	}
}
