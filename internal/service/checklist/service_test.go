package checklist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/turnos-app/turnos-backend-go/internal/domain/checklist"
)

type fakeChecklistRepo struct {
	items  map[string][]domain.Item
	seeded map[string]bool
}

func newFakeChecklistRepo() *fakeChecklistRepo {
	return &fakeChecklistRepo{
		items:  make(map[string][]domain.Item),
		seeded: make(map[string]bool),
	}
}

func (f *fakeChecklistRepo) GetWeek(ctx context.Context, weekID string) ([]domain.Item, error) {
	out := make([]domain.Item, len(f.items[weekID]))
	copy(out, f.items[weekID])
	return out, nil
}

func (f *fakeChecklistRepo) WeekSeeded(ctx context.Context, weekID string) (bool, error) {
	return f.seeded[weekID], nil
}

func (f *fakeChecklistRepo) SeedWeek(ctx context.Context, weekID string, items []domain.Item) error {
	f.seeded[weekID] = true
	f.items[weekID] = append(f.items[weekID], items...)
	return nil
}

func (f *fakeChecklistRepo) Insert(ctx context.Context, weekID string, item domain.Item) error {
	f.items[weekID] = append(f.items[weekID], item)
	return nil
}

func (f *fakeChecklistRepo) SetChecked(ctx context.Context, weekID string, itemID int64, checked bool) error {
	for i, it := range f.items[weekID] {
		if it.ID == itemID {
			f.items[weekID][i].Checked = checked
		}
	}
	return nil
}

func (f *fakeChecklistRepo) Delete(ctx context.Context, weekID string, itemID int64) error {
	items := f.items[weekID]
	out := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	f.items[weekID] = out
	return nil
}

func TestChecklistService_GetWeek_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo)

	got, err := svc.GetWeek(ctx, "2025-05-12")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-12", got.WeekID)
	assert.Len(t, got.Items, 4)
	assert.Equal(t, 0, got.Completion)

	// seeding happens once
	got, err = svc.GetWeek(ctx, "2025-05-12")
	require.NoError(t, err)
	assert.Len(t, got.Items, 4)
}

func TestChecklistService_GetWeek_NormalizesToMonday(t *testing.T) {
	ctx := context.Background()
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo)

	// Thursday maps onto the week of Monday 2025-05-12
	got, err := svc.GetWeek(ctx, "2025-05-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-12", got.WeekID)
}

func TestChecklistService_GetWeek_EmptiedWeekStaysEmpty(t *testing.T) {
	ctx := context.Background()
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo)

	_, err := svc.GetWeek(ctx, "2025-05-12")
	require.NoError(t, err)
	for _, it := range domain.DefaultItems() {
		require.NoError(t, svc.RemoveItem(ctx, "2025-05-12", it.ID))
	}

	got, err := svc.GetWeek(ctx, "2025-05-12")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestChecklistService_AddItem(t *testing.T) {
	ctx := context.Background()
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo)

	item, err := svc.AddItem(ctx, domain.AddItemRequest{WeekID: "2025-05-12", Label: "Pedir uniformes"})
	require.NoError(t, err)
	assert.Equal(t, "Pedir uniformes", item.Label)
	assert.False(t, item.Checked)
	assert.Len(t, repo.items["2025-05-12"], 1)
}

func TestChecklistService_AddItem_BlankLabelRejected(t *testing.T) {
	ctx := context.Background()
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo)

	_, err := svc.AddItem(ctx, domain.AddItemRequest{WeekID: "2025-05-12", Label: "  "})
	assert.Error(t, err)
	assert.Empty(t, repo.items["2025-05-12"])
}

func TestChecklistService_ToggleItem(t *testing.T) {
	ctx := context.Background()
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo)

	_, err := svc.GetWeek(ctx, "2025-05-12")
	require.NoError(t, err)

	got, err := svc.ToggleItem(ctx, "2025-05-12", 1)
	require.NoError(t, err)
	assert.True(t, got.Items[0].Checked)
	assert.Equal(t, 25, got.Completion)
	assert.True(t, repo.items["2025-05-12"][0].Checked)

	// unknown item id: current list comes back unchanged
	got, err = svc.ToggleItem(ctx, "2025-05-12", 99)
	require.NoError(t, err)
	assert.Equal(t, 25, got.Completion)
}
