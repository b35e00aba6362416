package session

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

var ErrNotFound = errors.New("session: not found")

// Store persists sessions keyed by token fingerprint. Implementations must
// be safe for concurrent use.
type Store interface {
	// Get returns the session stored under key. Missing and expired sessions
	// both yield ErrNotFound.
	Get(ctx context.Context, key string) (domain.Session, error)

	Set(ctx context.Context, s domain.Session) error

	// Delete removes a session. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// DeleteExpired removes sessions that expired before now and reports how
	// many were dropped. Stores with native expiry may return 0.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)

	// Ping reports whether the backing service is reachable.
	Ping(ctx context.Context) error
}
