package domain

import "time"

// ListStatusPending is the status every new list starts with.
const ListStatusPending = "pending"

// List is a named container of items. Lists are shared by all users.
type List struct {
	ID        string // UUIDv7
	Title     string
	Status    string // free-form label
	CreatedAt time.Time
}
