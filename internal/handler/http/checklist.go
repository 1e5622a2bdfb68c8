package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/turnos-app/turnos-backend-go/internal/domain/checklist"
	"github.com/turnos-app/turnos-backend-go/internal/handler/http/response"
)

type ChecklistHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	AddItem(w http.ResponseWriter, r *http.Request)
	ToggleItem(w http.ResponseWriter, r *http.Request)
	RemoveItem(w http.ResponseWriter, r *http.Request)
}

type checklistHandlerImpl struct {
	checklistService checklist.ChecklistService
}

func NewChecklistHandler(checklistService checklist.ChecklistService) ChecklistHandler {
	return &checklistHandlerImpl{
		checklistService: checklistService,
	}
}

func (h *checklistHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	weekID := chi.URLParam(r, "weekID")

	result, err := h.checklistService.GetWeek(r.Context(), weekID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *checklistHandlerImpl) AddItem(w http.ResponseWriter, r *http.Request) {
	var req checklist.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", nil)
		return
	}
	req.WeekID = chi.URLParam(r, "weekID")

	result, err := h.checklistService.AddItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checklist item added", result)
}

func (h *checklistHandlerImpl) ToggleItem(w http.ResponseWriter, r *http.Request) {
	weekID := chi.URLParam(r, "weekID")
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid item id", nil)
		return
	}

	result, err := h.checklistService.ToggleItem(r.Context(), weekID, itemID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *checklistHandlerImpl) RemoveItem(w http.ResponseWriter, r *http.Request) {
	weekID := chi.URLParam(r, "weekID")
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid item id", nil)
		return
	}

	if err := h.checklistService.RemoveItem(r.Context(), weekID, itemID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checklist item removed", nil)
}
