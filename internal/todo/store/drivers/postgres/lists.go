package postgres

import (
	"context"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

type listsRepo struct {
	db dbtx
}

func (r *listsRepo) CreateList(ctx context.Context, l domain.List) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO list (id, title, status, created_at) VALUES ($1, $2, $3, $4)`,
		l.ID, l.Title, l.Status, l.CreatedAt,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *listsRepo) GetListByID(ctx context.Context, id string) (domain.List, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, status, created_at FROM list WHERE id = $1`, id)
	l, err := scanList(row)
	if err != nil {
		return domain.List{}, mapNotFound(err)
	}
	return l, nil
}

func (r *listsRepo) ListLists(ctx context.Context) ([]domain.List, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, status, created_at FROM list ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := []domain.List{}
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (r *listsRepo) DeleteList(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM list WHERE id = $1`, id)
	return err
}
