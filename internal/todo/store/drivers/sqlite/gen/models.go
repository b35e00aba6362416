package gen

import (
	"time"
)

type Item struct {
	ID          string
	ListID      string
	Description string
	Status      string
	CreatedAt   time.Time
}

type List struct {
	ID        string
	Title     string
	Status    string
	CreatedAt time.Time
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
