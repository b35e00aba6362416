package sqlite

import (
	"context"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite/gen"
)

type listsRepo struct {
	q *gen.Queries
}

func (r *listsRepo) CreateList(ctx context.Context, l domain.List) error {
	err := r.q.CreateList(ctx, gen.CreateListParams{
		ID:        l.ID,
		Title:     l.Title,
		Status:    l.Status,
		CreatedAt: l.CreatedAt,
	})
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *listsRepo) GetListByID(ctx context.Context, id string) (domain.List, error) {
	row, err := r.q.GetListByID(ctx, id)
	if err != nil {
		return domain.List{}, mapNotFound(err)
	}
	return mapList(row), nil
}

func (r *listsRepo) ListLists(ctx context.Context) ([]domain.List, error) {
	rows, err := r.q.ListLists(ctx)
	if err != nil {
		return nil, err
	}

	lists := make([]domain.List, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, mapList(row))
	}
	return lists, nil
}

func (r *listsRepo) DeleteList(ctx context.Context, id string) error {
	return r.q.DeleteList(ctx, id)
}
