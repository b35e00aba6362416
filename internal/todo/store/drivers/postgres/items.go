package postgres

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

type itemsRepo struct {
	db dbtx
}

func (r *itemsRepo) CreateItem(ctx context.Context, it domain.Item) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, list_id, description, status, created_at) VALUES ($1, $2, $3, $4, $5)`,
		it.ID, it.ListID, it.Description, string(it.Status), it.CreatedAt,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *itemsRepo) ListItemsByList(ctx context.Context, listID string) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, list_id, description, status, created_at
FROM items
WHERE list_id = $1
ORDER BY created_at ASC, id ASC`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

const updateItem = `
UPDATE items
SET description = COALESCE($1, description),
    status      = COALESCE($2, status)
WHERE id = $3
RETURNING id, list_id, description, status, created_at`

func (r *itemsRepo) UpdateItem(ctx context.Context, id string, upd domain.ItemUpdate) (domain.Item, error) {
	upd = upd.Normalize()

	var desc, status sql.NullString
	if upd.Description != nil {
		desc = sql.NullString{String: *upd.Description, Valid: true}
	}
	if upd.Status != nil {
		status = sql.NullString{String: string(*upd.Status), Valid: true}
	}

	it, err := scanItem(r.db.QueryRowContext(ctx, updateItem, desc, status, id))
	if err != nil {
		return domain.Item{}, mapNotFound(err)
	}
	return it, nil
}

func (r *itemsRepo) DeleteItem(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	return err
}

func (r *itemsRepo) DeleteItemsByList(ctx context.Context, listID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE list_id = $1`, listID)
	return err
}
