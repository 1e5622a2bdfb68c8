package shift

import (
	"context"

	"github.com/turnos-app/turnos-backend-go/internal/pkg/dateutil"
)

type AssignmentRepository interface {
	// GetWindow loads the sparse assignment map for every day in the window.
	GetWindow(ctx context.Context, window dateutil.WeekWindow) (Map, error)
	Upsert(ctx context.Context, key Key, assignment Assignment) error
	Delete(ctx context.Context, key Key) error
	// DeleteWindow removes the given workers' assignments for the whole window.
	DeleteWindow(ctx context.Context, workerIDs []string, window dateutil.WeekWindow) error
}
