// Package session implements cookie sessions backed by a server-side store.
//
// A session is created at login. The browser receives a signed cookie that
// carries an opaque random token; the store keeps the user snapshot under
// the token's fingerprint. Sessions last a fixed window from creation and
// are not extended by use.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
)

const (
	DefaultTTL    = 24 * time.Hour
	DefaultIssuer = "todo"
)

// Config tunes a Manager. Zero values fall back to the defaults.
type Config struct {
	TTL    time.Duration
	Issuer string
}

type Manager struct {
	store  Store
	signer *jwtx.HS256
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewManager returns a Manager signing cookies with secret.
func NewManager(store Store, secret []byte, cfg Config) (*Manager, error) {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}

	signer, err := jwtx.NewHS256(secret, cfg.Issuer)
	if err != nil {
		return nil, err
	}

	return &Manager{
		store:  store,
		signer: signer,
		ttl:    cfg.TTL,
		issuer: cfg.Issuer,
		now:    time.Now,
	}, nil
}

// WithClock overrides the manager clock. Tests only.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	m.signer.WithClock(now)
	return m
}

// Create starts a session for p and returns the signed cookie value.
func (m *Manager) Create(ctx context.Context, p domain.Principal) (string, domain.Session, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("session: generate token: %w", err)
	}

	now := m.now().UTC()
	s := domain.Session{
		Key:       cryptox.FingerprintToken(token),
		Principal: p,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Set(ctx, s); err != nil {
		return "", domain.Session{}, err
	}

	value, err := m.signer.Sign(jwtx.NewSessionClaims(token, m.issuer, now, s.ExpiresAt))
	if err != nil {
		_ = m.store.Delete(ctx, s.Key)
		return "", domain.Session{}, err
	}
	return value, s, nil
}

// Resolve returns the principal behind a cookie value. Forged, expired and
// unknown cookies report ok=false with a nil error; only store failures are
// returned as errors.
func (m *Manager) Resolve(ctx context.Context, cookieValue string) (domain.Principal, bool, error) {
	if cookieValue == "" {
		return domain.Principal{}, false, nil
	}

	claims, err := m.signer.Verify(cookieValue)
	if err != nil {
		return domain.Principal{}, false, nil
	}

	s, err := m.store.Get(ctx, cryptox.FingerprintToken(claims.SID))
	if errors.Is(err, ErrNotFound) {
		return domain.Principal{}, false, nil
	}
	if err != nil {
		return domain.Principal{}, false, err
	}
	if s.Expired(m.now()) {
		return domain.Principal{}, false, nil
	}
	return s.Principal, true, nil
}

// Destroy ends the session behind a cookie value. Unknown or invalid cookies
// are ignored.
func (m *Manager) Destroy(ctx context.Context, cookieValue string) error {
	if cookieValue == "" {
		return nil
	}

	claims, err := m.signer.Verify(cookieValue)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, cryptox.FingerprintToken(claims.SID))
}

// DeleteExpired sweeps sessions whose window has closed.
func (m *Manager) DeleteExpired(ctx context.Context) (int, error) {
	return m.store.DeleteExpired(ctx, m.now())
}

// Ping checks the session store.
func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}
