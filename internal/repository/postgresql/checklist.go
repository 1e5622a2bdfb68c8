package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/turnos-app/turnos-backend-go/internal/domain/checklist"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/database"
)

type checklistRepositoryImpl struct {
	db *database.DB
}

func NewChecklistRepository(db *database.DB) checklist.ChecklistRepository {
	return &checklistRepositoryImpl{db: db}
}

// GetWeek implements checklist.ChecklistRepository.
func (r *checklistRepositoryImpl) GetWeek(ctx context.Context, weekID string) ([]checklist.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT item_id, label, checked
		FROM checklist_items
		WHERE week_id = $1
		ORDER BY position ASC
	`

	rows, err := q.Query(ctx, query, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to get week checklist: %w", err)
	}
	defer rows.Close()

	var items []checklist.Item
	for rows.Next() {
		var it checklist.Item
		if err := rows.Scan(&it.ID, &it.Label, &it.Checked); err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checklist items: %w", err)
	}

	return items, nil
}

// WeekSeeded implements checklist.ChecklistRepository. The seed marker row
// survives item deletions, so an emptied week is not re-seeded.
func (r *checklistRepositoryImpl) WeekSeeded(ctx context.Context, weekID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var seeded bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM checklist_weeks WHERE week_id = $1)`, weekID).Scan(&seeded)
	if err != nil {
		return false, fmt.Errorf("failed to check week seed marker: %w", err)
	}

	return seeded, nil
}

// SeedWeek implements checklist.ChecklistRepository.
func (r *checklistRepositoryImpl) SeedWeek(ctx context.Context, weekID string, items []checklist.Item) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO checklist_weeks (week_id, created_at) VALUES ($1, NOW())
			ON CONFLICT (week_id) DO NOTHING
		`, weekID); err != nil {
			return fmt.Errorf("failed to insert week seed marker: %w", err)
		}

		for i, it := range items {
			if _, err := tx.Exec(ctx, `
				INSERT INTO checklist_items (week_id, item_id, label, checked, position, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			`, weekID, it.ID, it.Label, it.Checked, i); err != nil {
				return fmt.Errorf("failed to insert default checklist item: %w", err)
			}
		}
		return nil
	})
}

// Insert implements checklist.ChecklistRepository.
func (r *checklistRepositoryImpl) Insert(ctx context.Context, weekID string, item checklist.Item) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO checklist_items (week_id, item_id, label, checked, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM checklist_items WHERE week_id = $1),
			NOW(), NOW())
	`

	if _, err := q.Exec(ctx, query, weekID, item.ID, item.Label, item.Checked); err != nil {
		return fmt.Errorf("failed to insert checklist item: %w", err)
	}

	return nil
}

// SetChecked implements checklist.ChecklistRepository.
func (r *checklistRepositoryImpl) SetChecked(ctx context.Context, weekID string, itemID int64, checked bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE checklist_items SET checked = $3, updated_at = NOW() WHERE week_id = $1 AND item_id = $2`

	if _, err := q.Exec(ctx, query, weekID, itemID, checked); err != nil {
		return fmt.Errorf("failed to update checklist item: %w", err)
	}

	return nil
}

// Delete implements checklist.ChecklistRepository.
func (r *checklistRepositoryImpl) Delete(ctx context.Context, weekID string, itemID int64) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM checklist_items WHERE week_id = $1 AND item_id = $2`, weekID, itemID); err != nil {
		return fmt.Errorf("failed to delete checklist item: %w", err)
	}

	return nil
}
