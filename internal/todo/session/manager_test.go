package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/session"
	"github.com/stretchr/testify/require"
)

var alice = domain.Principal{ID: "01HZX3", Username: "alice", Name: "Alice"}

func newManager(t *testing.T, store session.Store) *session.Manager {
	t.Helper()

	m, err := session.NewManager(store, []byte("test-secret-of-reasonable-length"), session.Config{})
	require.NoError(t, err)
	return m
}

func TestManagerLifecycle(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	m := newManager(t, store)
	ctx := t.Context()

	value, s, err := m.Create(ctx, alice)
	require.NoError(t, err)
	require.NotEmpty(t, value)
	require.NotContains(t, value, s.Key, "cookie must not carry the store key")
	require.Equal(t, session.DefaultTTL, s.ExpiresAt.Sub(s.CreatedAt))

	got, ok, err := m.Resolve(ctx, value)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, alice, got)

	require.NoError(t, m.Destroy(ctx, value))
	_, ok, err = m.Resolve(ctx, value)
	require.NoError(t, err)
	require.False(t, ok)

	// Destroy is idempotent
	require.NoError(t, m.Destroy(ctx, value))
}

func TestManagerResolveRejects(t *testing.T) {
	t.Parallel()

	m := newManager(t, session.NewMemoryStore())
	ctx := t.Context()

	value, _, err := m.Create(ctx, alice)
	require.NoError(t, err)

	other, err := session.NewManager(session.NewMemoryStore(), []byte("another-secret"), session.Config{})
	require.NoError(t, err)
	forged, _, err := other.Create(ctx, alice)
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "garbage", value: "not-a-cookie"},
		{name: "tampered", value: tamper(value)},
		{name: "foreign secret", value: forged},
		{name: "truncated", value: strings.SplitN(value, ".", 2)[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := m.Resolve(ctx, tt.value)
			require.NoError(t, err)
			require.False(t, ok)
			require.NoError(t, m.Destroy(ctx, tt.value))
		})
	}
}

func TestManagerFixedWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	store := session.NewMemoryStore().WithClock(clock)
	m := newManager(t, store).WithClock(clock)
	ctx := t.Context()

	value, _, err := m.Create(ctx, alice)
	require.NoError(t, err)

	now = now.Add(23 * time.Hour)
	_, ok, err := m.Resolve(ctx, value)
	require.NoError(t, err)
	require.True(t, ok)

	// Access does not extend the window
	now = now.Add(time.Hour)
	_, ok, err = m.Resolve(ctx, value)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestManagerDeleteExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := session.NewMemoryStore()
	m, err := session.NewManager(store, []byte("secret"), session.Config{TTL: time.Minute})
	require.NoError(t, err)
	m.WithClock(func() time.Time { return now })

	for range 3 {
		_, _, err := m.Create(t.Context(), alice)
		require.NoError(t, err)
	}

	removed, err := m.DeleteExpired(t.Context())
	require.NoError(t, err)
	require.Zero(t, removed, "live sessions are kept")

	now = now.Add(2 * time.Minute)
	removed, err = m.DeleteExpired(t.Context())
	require.NoError(t, err)
	require.Equal(t, 3, removed)

	removed, err = m.DeleteExpired(t.Context())
	require.NoError(t, err)
	require.Zero(t, removed)
}

// tamper flips one character inside the signature segment.
func tamper(value string) string {
	b := []byte(value)
	i := len(b) - 10
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}

type failingStore struct{ session.Store }

var errStoreDown = errors.New("store down")

func (failingStore) Get(context.Context, string) (domain.Session, error) {
	return domain.Session{}, errStoreDown
}

func TestManagerResolveStoreFailure(t *testing.T) {
	t.Parallel()

	mem := session.NewMemoryStore()
	value, _, err := newManager(t, mem).Create(t.Context(), alice)
	require.NoError(t, err)

	m := newManager(t, failingStore{Store: mem})
	_, ok, err := m.Resolve(t.Context(), value)
	require.ErrorIs(t, err, errStoreDown)
	require.False(t, ok)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	t.Parallel()

	m := newManager(t, session.NewMemoryStore())
	ctx := t.Context()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, _, err := m.Create(ctx, alice)
			if err != nil {
				t.Error(err)
				return
			}
			if _, ok, _ := m.Resolve(ctx, value); !ok {
				t.Error("fresh session did not resolve")
			}
			_ = m.Destroy(ctx, value)
		}()
	}
	wg.Wait()
}

func TestCookie(t *testing.T) {
	t.Parallel()

	t.Run("development is lax", func(t *testing.T) {
		c := session.NewCookie("", false)
		rec := httptest.NewRecorder()
		c.Write(rec, "value", time.Now().Add(time.Hour))

		ck := rec.Result().Cookies()[0]
		require.Equal(t, session.DefaultCookieName, ck.Name)
		require.True(t, ck.HttpOnly)
		require.False(t, ck.Secure)
		require.Equal(t, http.SameSiteLaxMode, ck.SameSite)
		require.Equal(t, "/", ck.Path)
		require.InDelta(t, 3600, ck.MaxAge, 2)
	})

	t.Run("production is none and secure", func(t *testing.T) {
		c := session.NewCookie("sid", true)
		rec := httptest.NewRecorder()
		c.Write(rec, "value", time.Now().Add(time.Hour))

		ck := rec.Result().Cookies()[0]
		require.True(t, ck.Secure)
		require.Equal(t, http.SameSiteNoneMode, ck.SameSite)
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		c := session.NewCookie("sid", false)
		rec := httptest.NewRecorder()
		c.Clear(rec)

		ck := rec.Result().Cookies()[0]
		require.Equal(t, "sid", ck.Name)
		require.Empty(t, ck.Value)
		require.Negative(t, ck.MaxAge)
	})

	t.Run("read", func(t *testing.T) {
		c := session.NewCookie("sid", false)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.Empty(t, c.Read(req))

		req.AddCookie(&http.Cookie{Name: "sid", Value: "abc"})
		require.Equal(t, "abc", c.Read(req))
	})
}
