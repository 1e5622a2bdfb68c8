package roster

import "context"

type RosterService interface {
	ListWorkers(ctx context.Context, showArchived bool) ([]WorkerResponse, error)
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) error
	DeleteWorker(ctx context.Context, id string) error
	ToggleArchiveWorker(ctx context.Context, id string) error
	Reorder(ctx context.Context, req ReorderRequest) ([]WorkerResponse, error)
}
