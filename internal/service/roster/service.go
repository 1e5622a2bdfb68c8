package roster

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/turnos-app/turnos-backend-go/internal/domain/roster"
)

type rosterServiceImpl struct {
	workerRepo domain.WorkerRepository
}

func NewRosterService(workerRepo domain.WorkerRepository) domain.RosterService {
	return &rosterServiceImpl{
		workerRepo: workerRepo,
	}
}

// ListWorkers implements roster.RosterService. Positions refer to the full
// backing sequence, not the filtered view.
func (s *rosterServiceImpl) ListWorkers(ctx context.Context, showArchived bool) ([]domain.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	out := make([]domain.WorkerResponse, 0, len(workers))
	for i, w := range workers {
		if w.IsActive == showArchived {
			continue
		}
		out = append(out, domain.ToWorkerResponse(w, i))
	}
	return out, nil
}

// CreateWorker implements roster.RosterService.
func (s *rosterServiceImpl) CreateWorker(ctx context.Context, req domain.CreateWorkerRequest) (domain.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.WorkerResponse{}, err
	}

	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return domain.WorkerResponse{}, fmt.Errorf("failed to load roster: %w", err)
	}

	updated, created, err := domain.Add(workers, domain.WorkerDraft{
		Name:       req.Name,
		ShortName:  req.ShortName,
		NationalID: req.NationalID,
		Role:       req.Role,
		Site:       req.Site,
		Place:      req.Place,
		IsReliever: req.IsReliever,
	})
	if err != nil {
		return domain.WorkerResponse{}, err
	}

	created, err = s.workerRepo.Create(ctx, created, len(updated)-1)
	if err != nil {
		return domain.WorkerResponse{}, fmt.Errorf("failed to persist worker: %w", err)
	}

	return domain.ToWorkerResponse(created, len(updated)-1), nil
}

// UpdateWorker implements roster.RosterService.
func (s *rosterServiceImpl) UpdateWorker(ctx context.Context, req domain.UpdateWorkerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	existing.Name = req.Name
	existing.ShortName = req.ShortName
	existing.NationalID = req.NationalID
	existing.Role = req.Role
	existing.Site = req.Site
	existing.Place = req.Place
	if req.Color != "" {
		existing.Color = req.Color
	}
	existing.IsReliever = req.IsReliever

	return s.workerRepo.Update(ctx, existing)
}

// DeleteWorker implements roster.RosterService. Absent ids are tolerated:
// roster edits can race with navigation and must not crash the view.
func (s *rosterServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	return s.workerRepo.Delete(ctx, id)
}

// ToggleArchiveWorker implements roster.RosterService. Unknown ids are a
// silent no-op.
func (s *rosterServiceImpl) ToggleArchiveWorker(ctx context.Context, id string) error {
	existing, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrWorkerNotFound) {
			return nil
		}
		return err
	}

	return s.workerRepo.SetActive(ctx, id, !existing.IsActive)
}

// Reorder implements roster.RosterService. A move that changes nothing skips
// the write entirely.
func (s *rosterServiceImpl) Reorder(ctx context.Context, req domain.ReorderRequest) ([]domain.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	moved := domain.Move(workers, req.SourceID, req.TargetID)
	if !sameOrder(workers, moved) {
		if err := s.workerRepo.ReplaceOrder(ctx, moved); err != nil {
			return nil, fmt.Errorf("failed to persist roster order: %w", err)
		}
	}

	return domain.ToWorkerResponses(moved), nil
}

func sameOrder(a, b []domain.Worker) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
