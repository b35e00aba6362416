package domain

import (
	"errors"
	"fmt"
	"time"
)

// ItemStatus is the completion state of an item.
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "pending"
	ItemStatusCompleted ItemStatus = "completed"
)

var (
	ErrInvalidItemStatus = errors.New("invalid item status")
	ErrEmptyItemUpdate   = errors.New("item update sets no field")
)

// ParseItemStatus validates a wire status value.
func ParseItemStatus(s string) (ItemStatus, error) {
	switch ItemStatus(s) {
	case ItemStatusPending, ItemStatusCompleted:
		return ItemStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidItemStatus, s)
	}
}

// Item is a single entry within a list.
type Item struct {
	ID          string // UUIDv7
	ListID      string
	Description string
	Status      ItemStatus
	CreatedAt   time.Time
}

// ItemUpdate is a partial update. Nil fields keep their stored value.
type ItemUpdate struct {
	Description *string
	Status      *ItemStatus
}

// Validate rejects updates that change nothing or carry an unknown status.
// A blank description counts as unset.
func (u ItemUpdate) Validate() error {
	u = u.Normalize()
	if u.Description == nil && u.Status == nil {
		return ErrEmptyItemUpdate
	}
	if u.Status != nil {
		if _, err := ParseItemStatus(string(*u.Status)); err != nil {
			return err
		}
	}
	return nil
}

// Normalize returns u with a blank description treated as unset.
func (u ItemUpdate) Normalize() ItemUpdate {
	if u.Description != nil && IsBlank(*u.Description) {
		u.Description = nil
	}
	return u
}
