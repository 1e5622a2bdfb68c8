package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turnos-app/turnos-backend-go/internal/domain/roster"
	"github.com/turnos-app/turnos-backend-go/internal/handler/http/response"
)

type WorkerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ToggleArchive(w http.ResponseWriter, r *http.Request)
	Reorder(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	rosterService roster.RosterService
}

func NewWorkerHandler(rosterService roster.RosterService) WorkerHandler {
	return &workerHandlerImpl{
		rosterService: rosterService,
	}
}

func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	showArchived := r.URL.Query().Get("archived") == "true"

	result, err := h.rosterService.ListWorkers(r.Context(), showArchived)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req roster.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", nil)
		return
	}

	result, err := h.rosterService.CreateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created successfully", result)
}

func (h *workerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req roster.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.rosterService.UpdateWorker(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", nil)
}

func (h *workerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.rosterService.DeleteWorker(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker deleted", nil)
}

func (h *workerHandlerImpl) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.rosterService.ToggleArchiveWorker(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker archive state toggled", nil)
}

func (h *workerHandlerImpl) Reorder(w http.ResponseWriter, r *http.Request) {
	var req roster.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", nil)
		return
	}

	result, err := h.rosterService.Reorder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
