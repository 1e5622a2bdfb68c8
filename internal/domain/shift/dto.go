package shift

import (
	"strings"

	"github.com/turnos-app/turnos-backend-go/internal/pkg/validator"
)

type AssignShiftRequest struct {
	WorkerID   string `json:"-"`
	Day        string `json:"-"`
	Type       string `json:"type"`
	Place      string `json:"place"`
	CoveringID string `json:"covering_id"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must be a valid worker id",
		})
	}
	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be a YYYY-MM-DD date",
		})
	}
	if !validator.IsInSlice(r.Type, ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(ShiftTypeValues, ", "),
		})
	}
	if r.CoveringID != "" && !ShiftType(r.Type).IsWorking() {
		errs = append(errs, validator.ValidationError{
			Field:   "covering_id",
			Message: "covering_id is only allowed on working shift types",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	WorkerID   string `json:"worker_id"`
	Day        string `json:"day"`
	Type       string `json:"type"`
	Place      string `json:"place,omitempty"`
	CoveringID string `json:"covering_id,omitempty"`
}

type WeekAssignmentsResponse struct {
	WeekID      string               `json:"week_id"`
	Days        []string             `json:"days"`
	Assignments []AssignmentResponse `json:"assignments"`
}

type RestEntryResponse struct {
	WorkerID     string `json:"worker_id"`
	Name         string `json:"name"`
	Site         string `json:"site,omitempty"`
	RelieverID   string `json:"reliever_id,omitempty"`
	RelieverName string `json:"reliever_name,omitempty"`
}

type DayViewResponse struct {
	Day     string              `json:"day"`
	Resting []RestEntryResponse `json:"resting"`
}

type SummaryRowResponse struct {
	WorkerID string   `json:"worker_id"`
	Name     string   `json:"name"`
	Places   []string `json:"places"`
}

type WeekViewResponse struct {
	WeekID  string                          `json:"week_id"`
	Days    []DayViewResponse               `json:"days"`
	Summary map[string][]SummaryRowResponse `json:"summary"`
}

func ToWeekViewResponse(view WeekView) WeekViewResponse {
	resp := WeekViewResponse{
		WeekID:  view.Window.WeekID,
		Days:    make([]DayViewResponse, 0, len(view.Days)),
		Summary: make(map[string][]SummaryRowResponse),
	}

	for _, dv := range view.Days {
		day := DayViewResponse{Day: dv.Day, Resting: []RestEntryResponse{}}
		for _, entry := range dv.Resting {
			r := RestEntryResponse{
				WorkerID: entry.Worker.ID,
				Name:     entry.Worker.Name,
				Site:     entry.Worker.Site,
			}
			if entry.Reliever != nil {
				r.RelieverID = entry.Reliever.ID
				r.RelieverName = entry.Reliever.Name
			}
			day.Resting = append(day.Resting, r)
		}
		resp.Days = append(resp.Days, day)
	}

	for st, rows := range view.Summary {
		out := make([]SummaryRowResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, SummaryRowResponse{
				WorkerID: row.Worker.ID,
				Name:     row.Worker.Name,
				Places:   row.Places,
			})
		}
		resp.Summary[string(st)] = out
	}

	return resp
}
