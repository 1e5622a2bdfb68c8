package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnos-app/turnos-backend-go/internal/domain/checklist"
	domain "github.com/turnos-app/turnos-backend-go/internal/domain/report"
	"github.com/turnos-app/turnos-backend-go/internal/domain/roster"
	"github.com/turnos-app/turnos-backend-go/internal/domain/shift"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/dateutil"
)

type fakeWorkerRepo struct {
	workers []roster.Worker
}

func (f *fakeWorkerRepo) List(ctx context.Context) ([]roster.Worker, error) {
	return f.workers, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (roster.Worker, error) {
	for _, w := range f.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return roster.Worker{}, roster.ErrWorkerNotFound
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w roster.Worker, position int) (roster.Worker, error) {
	return w, nil
}

func (f *fakeWorkerRepo) Update(ctx context.Context, w roster.Worker) error { return nil }

func (f *fakeWorkerRepo) SetActive(ctx context.Context, id string, active bool) error { return nil }

func (f *fakeWorkerRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeWorkerRepo) ReplaceOrder(ctx context.Context, workers []roster.Worker) error { return nil }

type fakeAssignmentRepo struct {
	m shift.Map
}

func (f *fakeAssignmentRepo) GetWindow(ctx context.Context, window dateutil.WeekWindow) (shift.Map, error) {
	return f.m, nil
}

func (f *fakeAssignmentRepo) Upsert(ctx context.Context, key shift.Key, a shift.Assignment) error {
	return nil
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, key shift.Key) error { return nil }

func (f *fakeAssignmentRepo) DeleteWindow(ctx context.Context, workerIDs []string, window dateutil.WeekWindow) error {
	return nil
}

type fakeChecklistRepo struct {
	items []checklist.Item
}

func (f *fakeChecklistRepo) GetWeek(ctx context.Context, weekID string) ([]checklist.Item, error) {
	return f.items, nil
}

func (f *fakeChecklistRepo) WeekSeeded(ctx context.Context, weekID string) (bool, error) {
	return true, nil
}

func (f *fakeChecklistRepo) SeedWeek(ctx context.Context, weekID string, items []checklist.Item) error {
	return nil
}

func (f *fakeChecklistRepo) Insert(ctx context.Context, weekID string, item checklist.Item) error {
	return nil
}

func (f *fakeChecklistRepo) SetChecked(ctx context.Context, weekID string, itemID int64, checked bool) error {
	return nil
}

func (f *fakeChecklistRepo) Delete(ctx context.Context, weekID string, itemID int64) error {
	return nil
}

func TestReportService_GenerateWeekReport(t *testing.T) {
	ctx := context.Background()

	workers := []roster.Worker{
		{ID: "w1", Name: "Ana", Site: "HQ", IsActive: true},
		{ID: "w2", Name: "Bruno", Site: "Planta Norte", IsActive: true},
		{ID: "w3", Name: "Zoe", Site: "HQ", IsActive: false}, // archived, must not appear
	}
	m := shift.Map{
		{WorkerID: "w1", Day: "2025-05-12"}: {Type: shift.TypeOff},
		{WorkerID: "w2", Day: "2025-05-12"}: {Type: shift.TypeMorning, Place: "Caja"},
		{WorkerID: "w2", Day: "2025-05-13"}: {Type: shift.TypeOff},
	}
	for _, day := range []string{"2025-05-13", "2025-05-14", "2025-05-15", "2025-05-16", "2025-05-17", "2025-05-18"} {
		m[shift.Key{WorkerID: "w1", Day: day}] = shift.Assignment{Type: shift.TypeMorning}
	}
	for _, day := range []string{"2025-05-14", "2025-05-15", "2025-05-16", "2025-05-17", "2025-05-18"} {
		m[shift.Key{WorkerID: "w2", Day: day}] = shift.Assignment{Type: shift.TypeMorning, Place: "Caja"}
	}
	items := []checklist.Item{{ID: 1, Checked: true}, {ID: 2}}

	svc := NewReportService(
		&fakeWorkerRepo{workers: workers},
		&fakeAssignmentRepo{m: m},
		&fakeChecklistRepo{items: items},
		"HQ",
	)

	got, err := svc.GenerateWeekReport(ctx, domain.WeekReportRequest{Day: "2025-05-14"})
	require.NoError(t, err)

	assert.Equal(t, "2025-05-12", got.WeekID)
	assert.Contains(t, got.Text, "Descansos del 12 al 18 de mayo")
	assert.Contains(t, got.Text, "Lunes Ana \n")
	assert.Contains(t, got.Text, "Martes Bruno (Planta Norte) \n")
	assert.Contains(t, got.Text, "Mañana:\nBruno: Caja\n")
	assert.Contains(t, got.Text, "Checklist semanal: 50% completado")
	assert.NotContains(t, got.Text, "Zoe")
}

func TestReportService_GenerateWeekReport_Overrides(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(
		&fakeWorkerRepo{},
		&fakeAssignmentRepo{m: shift.Map{}},
		&fakeChecklistRepo{},
		"HQ",
	)

	off := false
	got, err := svc.GenerateWeekReport(ctx, domain.WeekReportRequest{
		Day:        "2025-05-14",
		ShowHeader: &off,
	})
	require.NoError(t, err)
	assert.NotContains(t, got.Text, "Descansos")
	assert.Contains(t, got.Text, "Checklist semanal: 0% completado")
}

func TestReportService_GenerateWeekReport_InvalidDay(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(&fakeWorkerRepo{}, &fakeAssignmentRepo{}, &fakeChecklistRepo{}, "HQ")

	_, err := svc.GenerateWeekReport(ctx, domain.WeekReportRequest{Day: "not-a-date"})
	assert.Error(t, err)
}
