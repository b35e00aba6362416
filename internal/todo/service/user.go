package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

var (
	ErrIncompleteData       = errors.New("incomplete data")
	ErrUsernameAlreadyTaken = errors.New("username already taken")
	ErrUserNotFound         = errors.New("user not found")
	ErrIncorrectPassword    = errors.New("incorrect password")
)

type UserService struct {
	Store store.Store
	Now   func() time.Time
}

// Register creates an account. Username uniqueness is enforced by the
// database, so two concurrent registrations cannot both succeed.
func (s *UserService) Register(ctx context.Context, username, password, name string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if domain.IsBlank(username) || password == "" || domain.IsBlank(name) {
		return domain.User{}, ErrIncompleteData
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    clock(s.Now),
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("registration with taken username", slog.String("username", username))
			return domain.User{}, ErrUsernameAlreadyTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	log.Info("user registered", slog.String("user_id", u.ID))
	return u, nil
}

// Login checks a username and password. Legacy digests are upgraded to the
// current hash on success.
func (s *UserService) Login(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if domain.IsBlank(username) || password == "" {
		return domain.User{}, ErrIncompleteData
	}

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("login with incorrect password", slog.String("user_id", u.ID))
			return domain.User{}, ErrIncorrectPassword
		}
		return domain.User{}, fmt.Errorf("verify password: %w", err)
	}

	if cryptox.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, &u, password)
	}

	return u, nil
}

// rehash stores a fresh digest. Failure only costs the upgrade, so the
// login still succeeds.
func (s *UserService) rehash(ctx context.Context, u *domain.User, password string) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Warn("failed to rehash password", slog.Any("error", err))
		return
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash); err != nil {
		log.Warn("failed to store rehashed password", slog.String("user_id", u.ID), slog.Any("error", err))
		return
	}
	u.PasswordHash = hash
	log.Info("upgraded legacy password hash", slog.String("user_id", u.ID))
}
