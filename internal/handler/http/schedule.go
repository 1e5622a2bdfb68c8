package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turnos-app/turnos-backend-go/internal/domain/shift"
	"github.com/turnos-app/turnos-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetWeekAssignments(w http.ResponseWriter, r *http.Request)
	GetWeekView(w http.ResponseWriter, r *http.Request)
	AssignShift(w http.ResponseWriter, r *http.Request)
	RemoveShift(w http.ResponseWriter, r *http.Request)
	ClearWeek(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService shift.ScheduleService
}

func NewScheduleHandler(scheduleService shift.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

func (h *scheduleHandlerImpl) GetWeekAssignments(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("date")

	result, err := h.scheduleService.GetWeekAssignments(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) GetWeekView(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("date")

	result, err := h.scheduleService.GetWeekView(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", nil)
		return
	}
	req.WorkerID = chi.URLParam(r, "workerID")
	req.Day = chi.URLParam(r, "day")

	result, err := h.scheduleService.AssignShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) RemoveShift(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	day := chi.URLParam(r, "day")

	if err := h.scheduleService.RemoveShift(r.Context(), workerID, day); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift removed", nil)
}

func (h *scheduleHandlerImpl) ClearWeek(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("date")

	if err := h.scheduleService.ClearWeek(r.Context(), day); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week cleared", nil)
}
