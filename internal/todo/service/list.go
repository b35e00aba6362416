package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrListNotFound  = errors.New("list not found")
)

type ListService struct {
	Store store.Store
	Now   func() time.Time
}

// ListLists returns every list, newest first.
func (s *ListService) ListLists(ctx context.Context) ([]domain.List, error) {
	return s.Store.Lists().ListLists(ctx)
}

func (s *ListService) GetList(ctx context.Context, id string) (domain.List, error) {
	l, err := s.Store.Lists().GetListByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.List{}, ErrListNotFound
	}
	return l, err
}

// CreateList creates a pending list. A blank title is rejected.
func (s *ListService) CreateList(ctx context.Context, title string) (domain.List, error) {
	if domain.IsBlank(title) {
		return domain.List{}, ErrTitleRequired
	}

	l := domain.List{
		ID:        idx.NewUUID(),
		Title:     title,
		Status:    domain.ListStatusPending,
		CreatedAt: clock(s.Now),
	}
	if err := s.Store.Lists().CreateList(ctx, l); err != nil {
		return domain.List{}, fmt.Errorf("create list: %w", err)
	}

	slogx.FromContext(ctx).Info("list created", slog.String("list_id", l.ID))
	return l, nil
}

// DeleteList removes a list and all of its items atomically. Unknown ids
// are a no-op.
func (s *ListService) DeleteList(ctx context.Context, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Items().DeleteItemsByList(ctx, id); err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		if err := tx.Lists().DeleteList(ctx, id); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("list deleted", slog.String("list_id", id))
	return nil
}
