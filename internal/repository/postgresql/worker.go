package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/turnos-app/turnos-backend-go/internal/domain/roster"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) roster.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

// List implements roster.WorkerRepository. Position order is the roster order.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]roster.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, short_name, national_id, role, site, place, color,
		       is_reliever, is_active, created_at, updated_at
		FROM workers
		ORDER BY position ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []roster.Worker
	for rows.Next() {
		var w roster.Worker
		if err := rows.Scan(
			&w.ID,
			&w.Name,
			&w.ShortName,
			&w.NationalID,
			&w.Role,
			&w.Site,
			&w.Place,
			&w.Color,
			&w.IsReliever,
			&w.IsActive,
			&w.CreatedAt,
			&w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workers: %w", err)
	}

	return workers, nil
}

// GetByID implements roster.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (roster.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, short_name, national_id, role, site, place, color,
		       is_reliever, is_active, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w roster.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID,
		&w.Name,
		&w.ShortName,
		&w.NationalID,
		&w.Role,
		&w.Site,
		&w.Place,
		&w.Color,
		&w.IsReliever,
		&w.IsActive,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.Worker{}, roster.ErrWorkerNotFound
		}
		return roster.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// Create implements roster.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, worker roster.Worker, position int) (roster.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (
			id, name, short_name, national_id, role, site, place, color,
			is_reliever, is_active, position, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		worker.ID,
		worker.Name,
		worker.ShortName,
		worker.NationalID,
		worker.Role,
		worker.Site,
		worker.Place,
		worker.Color,
		worker.IsReliever,
		worker.IsActive,
		position,
	).Scan(&worker.CreatedAt, &worker.UpdatedAt)
	if err != nil {
		return roster.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return worker, nil
}

// Update implements roster.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, worker roster.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = $2, short_name = $3, national_id = $4, role = $5,
		    site = $6, place = $7, is_reliever = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		worker.ID,
		worker.Name,
		worker.ShortName,
		worker.NationalID,
		worker.Role,
		worker.Site,
		worker.Place,
		worker.IsReliever,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return roster.ErrWorkerNotFound
	}

	return nil
}

// SetActive implements roster.WorkerRepository.
func (r *workerRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE workers SET is_active = $2, updated_at = NOW() WHERE id = $1`

	if _, err := q.Exec(ctx, query, id, active); err != nil {
		return fmt.Errorf("failed to set worker active flag: %w", err)
	}

	return nil
}

// Delete implements roster.WorkerRepository.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	return nil
}

// ReplaceOrder implements roster.WorkerRepository.
func (r *workerRepositoryImpl) ReplaceOrder(ctx context.Context, workers []roster.Worker) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `UPDATE workers SET position = $2, updated_at = NOW() WHERE id = $1`
		for i, w := range workers {
			if _, err := tx.Exec(ctx, query, w.ID, i); err != nil {
				return fmt.Errorf("failed to update worker position: %w", err)
			}
		}
		return nil
	})
}
