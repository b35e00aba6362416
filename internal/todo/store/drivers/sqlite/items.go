package sqlite

import (
	"context"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite/gen"
)

type itemsRepo struct {
	q *gen.Queries
}

func (r *itemsRepo) CreateItem(ctx context.Context, it domain.Item) error {
	err := r.q.CreateItem(ctx, gen.CreateItemParams{
		ID:          it.ID,
		ListID:      it.ListID,
		Description: it.Description,
		Status:      string(it.Status),
		CreatedAt:   it.CreatedAt,
	})
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *itemsRepo) ListItemsByList(ctx context.Context, listID string) ([]domain.Item, error) {
	rows, err := r.q.ListItemsByList(ctx, listID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapItem(row))
	}
	return items, nil
}

func (r *itemsRepo) UpdateItem(ctx context.Context, id string, upd domain.ItemUpdate) (domain.Item, error) {
	upd = upd.Normalize()

	var status *string
	if upd.Status != nil {
		s := string(*upd.Status)
		status = &s
	}

	row, err := r.q.UpdateItem(ctx, gen.UpdateItemParams{
		Description: mapOptionalString(upd.Description),
		Status:      mapOptionalString(status),
		ID:          id,
	})
	if err != nil {
		return domain.Item{}, mapNotFound(err)
	}
	return mapItem(row), nil
}

func (r *itemsRepo) DeleteItem(ctx context.Context, id string) error {
	return r.q.DeleteItem(ctx, id)
}

func (r *itemsRepo) DeleteItemsByList(ctx context.Context, listID string) error {
	return r.q.DeleteItemsByList(ctx, listID)
}
