// source: queries/lists.sql

package gen

import (
	"context"
	"time"
)

const createList = `-- name: CreateList :exec
INSERT INTO list (id, title, status, created_at)
VALUES (?, ?, ?, ?)
`

type CreateListParams struct {
	ID        string
	Title     string
	Status    string
	CreatedAt time.Time
}

func (q *Queries) CreateList(ctx context.Context, arg CreateListParams) error {
	_, err := q.db.ExecContext(ctx, createList,
		arg.ID,
		arg.Title,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const deleteList = `-- name: DeleteList :exec
DELETE FROM list WHERE id = ?
`

func (q *Queries) DeleteList(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteList, id)
	return err
}

const getListByID = `-- name: GetListByID :one
SELECT id, title, status, created_at
FROM list
WHERE id = ?
`

func (q *Queries) GetListByID(ctx context.Context, id string) (List, error) {
	row := q.db.QueryRowContext(ctx, getListByID, id)
	var i List
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const listLists = `-- name: ListLists :many
SELECT id, title, status, created_at
FROM list
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListLists(ctx context.Context) ([]List, error) {
	rows, err := q.db.QueryContext(ctx, listLists)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []List{}
	for rows.Next() {
		var i List
		if err := rows.Scan(
			&i.ID,
			&i.Title,
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
