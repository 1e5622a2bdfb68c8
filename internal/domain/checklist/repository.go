package checklist

import "context"

type ChecklistRepository interface {
	GetWeek(ctx context.Context, weekID string) ([]Item, error)
	// WeekSeeded reports whether the week was ever initialized, independent
	// of how many items it currently holds.
	WeekSeeded(ctx context.Context, weekID string) (bool, error)
	// SeedWeek marks the week as initialized and inserts the given items.
	SeedWeek(ctx context.Context, weekID string, items []Item) error
	Insert(ctx context.Context, weekID string, item Item) error
	SetChecked(ctx context.Context, weekID string, itemID int64, checked bool) error
	Delete(ctx context.Context, weekID string, itemID int64) error
}
