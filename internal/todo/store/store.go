package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories hang off it as methods so a Tx exposes exactly
// the same surface and nested transactions cannot be started by accident.
type Store interface {
	Users() Users
	Lists() Lists
	Items() Items

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user. A taken username yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByUsername matches the username exactly (case sensitive).
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UpdatePasswordHash replaces the stored digest, used to upgrade legacy hashes.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error
}

type Lists interface {
	CreateList(ctx context.Context, l domain.List) error

	GetListByID(ctx context.Context, id string) (domain.List, error)

	// ListLists returns every list, newest first.
	ListLists(ctx context.Context) ([]domain.List, error)

	// DeleteList removes the list row. Deleting an unknown id is not an error.
	DeleteList(ctx context.Context, id string) error
}

type Items interface {
	// CreateItem inserts an item. An unknown list id yields ErrNotFound.
	CreateItem(ctx context.Context, it domain.Item) error

	// ListItemsByList returns the items of a list, oldest first.
	ListItemsByList(ctx context.Context, listID string) ([]domain.Item, error)

	// UpdateItem applies the non-nil fields of upd and returns the stored row.
	// An unknown id yields ErrNotFound.
	UpdateItem(ctx context.Context, id string, upd domain.ItemUpdate) (domain.Item, error)

	// DeleteItem removes one item. Deleting an unknown id is not an error.
	DeleteItem(ctx context.Context, id string) error

	// DeleteItemsByList removes every item of a list.
	DeleteItemsByList(ctx context.Context, listID string) error
}
