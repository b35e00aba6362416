package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/idx"
)

var (
	ErrItemFieldsRequired = errors.New("list id and description are required")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrInvalidStatus      = errors.New("invalid item status")
	ErrItemNotFound       = errors.New("item not found")
)

type ItemService struct {
	Store store.Store
	Now   func() time.Time
}

// ListItems returns the items of a list, oldest first. An unknown list has
// no items.
func (s *ItemService) ListItems(ctx context.Context, listID string) ([]domain.Item, error) {
	return s.Store.Items().ListItemsByList(ctx, listID)
}

// CreateItem adds a pending item to an existing list.
func (s *ItemService) CreateItem(ctx context.Context, listID, description string) (domain.Item, error) {
	if domain.IsBlank(listID) || domain.IsBlank(description) {
		return domain.Item{}, ErrItemFieldsRequired
	}

	it := domain.Item{
		ID:          idx.NewUUID(),
		ListID:      listID,
		Description: description,
		Status:      domain.ItemStatusPending,
		CreatedAt:   clock(s.Now),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Lists().GetListByID(ctx, listID); err != nil {
			return err
		}
		return tx.Items().CreateItem(ctx, it)
	})
	if err != nil {
		// The list may vanish between the check and the insert; the foreign
		// key reports that as ErrNotFound too.
		if errors.Is(err, store.ErrNotFound) {
			return domain.Item{}, ErrListNotFound
		}
		return domain.Item{}, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

// UpdateItem applies a partial update and returns the full stored item.
func (s *ItemService) UpdateItem(ctx context.Context, id string, upd domain.ItemUpdate) (domain.Item, error) {
	if err := upd.Validate(); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyItemUpdate):
			return domain.Item{}, ErrNothingToUpdate
		case errors.Is(err, domain.ErrInvalidItemStatus):
			return domain.Item{}, ErrInvalidStatus
		}
		return domain.Item{}, err
	}

	it, err := s.Store.Items().UpdateItem(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Item{}, ErrItemNotFound
		}
		return domain.Item{}, fmt.Errorf("update item: %w", err)
	}
	return it, nil
}

// DeleteItem removes an item. Unknown ids are a no-op.
func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	return s.Store.Items().DeleteItem(ctx, id)
}
