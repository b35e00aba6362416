package postgres

import (
	"context"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

type usersRepo struct {
	db dbtx
}

const createUser = `
INSERT INTO users (id, username, password_hash, name, created_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, createUser, u.ID, u.Username, u.PasswordHash, u.Name, u.CreatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

const selectUser = `SELECT id, username, password_hash, name, created_at FROM users `

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, selectUser+`WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, newHash, userID)
	return err
}
