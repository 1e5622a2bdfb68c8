package checklist

import (
	"context"
	"fmt"

	domain "github.com/turnos-app/turnos-backend-go/internal/domain/checklist"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/dateutil"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/validator"
)

type checklistServiceImpl struct {
	checklistRepo domain.ChecklistRepository
}

func NewChecklistService(checklistRepo domain.ChecklistRepository) domain.ChecklistService {
	return &checklistServiceImpl{
		checklistRepo: checklistRepo,
	}
}

// normalizeWeekID maps any day key onto its week's Monday key.
func normalizeWeekID(weekID string) (string, error) {
	ref, err := dateutil.ParseDayKey(weekID)
	if err != nil {
		return "", validator.ValidationErrors{{
			Field:   "week_id",
			Message: "week_id must be a YYYY-MM-DD date",
		}}
	}
	return dateutil.NewWeekWindow(ref).WeekID, nil
}

// GetWeek implements checklist.ChecklistService. The first view of a week
// seeds the default items; a week emptied by deletions stays empty.
func (s *checklistServiceImpl) GetWeek(ctx context.Context, weekID string) (domain.WeekChecklistResponse, error) {
	weekID, err := normalizeWeekID(weekID)
	if err != nil {
		return domain.WeekChecklistResponse{}, err
	}

	seeded, err := s.checklistRepo.WeekSeeded(ctx, weekID)
	if err != nil {
		return domain.WeekChecklistResponse{}, err
	}
	if !seeded {
		if err := s.checklistRepo.SeedWeek(ctx, weekID, domain.DefaultItems()); err != nil {
			return domain.WeekChecklistResponse{}, fmt.Errorf("failed to seed week checklist: %w", err)
		}
	}

	items, err := s.checklistRepo.GetWeek(ctx, weekID)
	if err != nil {
		return domain.WeekChecklistResponse{}, err
	}

	return domain.ToWeekChecklistResponse(weekID, items), nil
}

// AddItem implements checklist.ChecklistService.
func (s *checklistServiceImpl) AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.ItemResponse{}, err
	}

	weekID, err := normalizeWeekID(req.WeekID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	items, err := s.checklistRepo.GetWeek(ctx, weekID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	store := domain.Store{weekID: items}
	_, item, err := domain.Add(store, weekID, req.Label)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	if err := s.checklistRepo.Insert(ctx, weekID, item); err != nil {
		return domain.ItemResponse{}, err
	}

	return domain.ItemResponse{ID: item.ID, Label: item.Label, Checked: item.Checked}, nil
}

// ToggleItem implements checklist.ChecklistService. Unknown item ids change
// nothing and still return the current list.
func (s *checklistServiceImpl) ToggleItem(ctx context.Context, weekID string, itemID int64) (domain.WeekChecklistResponse, error) {
	weekID, err := normalizeWeekID(weekID)
	if err != nil {
		return domain.WeekChecklistResponse{}, err
	}

	items, err := s.checklistRepo.GetWeek(ctx, weekID)
	if err != nil {
		return domain.WeekChecklistResponse{}, err
	}

	store := domain.Toggle(domain.Store{weekID: items}, weekID, itemID)
	for _, it := range store[weekID] {
		if it.ID == itemID {
			if err := s.checklistRepo.SetChecked(ctx, weekID, itemID, it.Checked); err != nil {
				return domain.WeekChecklistResponse{}, err
			}
			break
		}
	}

	return domain.ToWeekChecklistResponse(weekID, store[weekID]), nil
}

// RemoveItem implements checklist.ChecklistService.
func (s *checklistServiceImpl) RemoveItem(ctx context.Context, weekID string, itemID int64) error {
	weekID, err := normalizeWeekID(weekID)
	if err != nil {
		return err
	}
	return s.checklistRepo.Delete(ctx, weekID, itemID)
}
