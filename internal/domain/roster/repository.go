package roster

import "context"

type WorkerRepository interface {
	List(ctx context.Context) ([]Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	Create(ctx context.Context, worker Worker, position int) (Worker, error)
	Update(ctx context.Context, worker Worker) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	// ReplaceOrder rewrites every worker's position to match the given
	// sequence, in one transaction.
	ReplaceOrder(ctx context.Context, workers []Worker) error
}
