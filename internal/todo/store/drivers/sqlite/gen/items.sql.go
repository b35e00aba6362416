// source: queries/items.sql

package gen

import (
	"context"
	"database/sql"
	"time"
)

const createItem = `-- name: CreateItem :exec
INSERT INTO items (id, list_id, description, status, created_at)
VALUES (?, ?, ?, ?, ?)
`

type CreateItemParams struct {
	ID          string
	ListID      string
	Description string
	Status      string
	CreatedAt   time.Time
}

func (q *Queries) CreateItem(ctx context.Context, arg CreateItemParams) error {
	_, err := q.db.ExecContext(ctx, createItem,
		arg.ID,
		arg.ListID,
		arg.Description,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const deleteItem = `-- name: DeleteItem :exec
DELETE FROM items WHERE id = ?
`

func (q *Queries) DeleteItem(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteItem, id)
	return err
}

const deleteItemsByList = `-- name: DeleteItemsByList :exec
DELETE FROM items WHERE list_id = ?
`

func (q *Queries) DeleteItemsByList(ctx context.Context, listID string) error {
	_, err := q.db.ExecContext(ctx, deleteItemsByList, listID)
	return err
}

const listItemsByList = `-- name: ListItemsByList :many
SELECT id, list_id, description, status, created_at
FROM items
WHERE list_id = ?
ORDER BY created_at ASC, id ASC
`

func (q *Queries) ListItemsByList(ctx context.Context, listID string) ([]Item, error) {
	rows, err := q.db.QueryContext(ctx, listItemsByList, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Item{}
	for rows.Next() {
		var i Item
		if err := rows.Scan(
			&i.ID,
			&i.ListID,
			&i.Description,
			&i.Status,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateItem = `-- name: UpdateItem :one
UPDATE items
SET description = COALESCE(?1, description),
    status      = COALESCE(?2, status)
WHERE id = ?3
RETURNING id, list_id, description, status, created_at
`

type UpdateItemParams struct {
	Description sql.NullString
	Status      sql.NullString
	ID          string
}

func (q *Queries) UpdateItem(ctx context.Context, arg UpdateItemParams) (Item, error) {
	row := q.db.QueryRowContext(ctx, updateItem, arg.Description, arg.Status, arg.ID)
	var i Item
	err := row.Scan(
		&i.ID,
		&i.ListID,
		&i.Description,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}
