package checklist

import "context"

type ChecklistService interface {
	// GetWeek returns the week's checklist, seeding the defaults the first
	// time the week is requested.
	GetWeek(ctx context.Context, weekID string) (WeekChecklistResponse, error)
	AddItem(ctx context.Context, req AddItemRequest) (ItemResponse, error)
	ToggleItem(ctx context.Context, weekID string, itemID int64) (WeekChecklistResponse, error)
	RemoveItem(ctx context.Context, weekID string, itemID int64) error
}
