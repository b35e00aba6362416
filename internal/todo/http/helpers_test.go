package http_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	todohttp "github.com/aussiebroadwan/todo/internal/todo/http"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/session"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

const (
	testOrigin   = "http://localhost:5173"
	testPassword = "correct horse battery staple"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	// Tests fire many requests from one address
	relaxed := httpx.RateLimitConfig{RequestsPerWindow: 100000, Window: time.Minute, Burst: 100000}
	httpx.StrictLimit = relaxed
	httpx.ModerateLimit = relaxed
	httpx.LenientLimit = relaxed
	httpx.PublicLimit = relaxed

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// fakeClock is a settable clock shared by the session manager and store.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Now()}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// brokenSessions is a session store whose backend is unreachable.
type brokenSessions struct {
	*session.MemoryStore
}

var errBackendDown = errors.New("backend down")

func (brokenSessions) Ping(context.Context) error { return errBackendDown }

func (brokenSessions) Get(context.Context, string) (domain.Session, error) {
	return domain.Session{}, errBackendDown
}

type serverConfig struct {
	RequireSession bool
	Clock          *fakeClock
	Sessions       session.Store
	Logger         *slog.Logger
}

// logBuffer collects JSON log lines written by the server goroutines.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// count returns how many records carry msg.
func (b *logBuffer) count(msg string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Count(b.buf.String(), `"msg":"`+msg+`"`)
}

type testServer struct {
	URL    string
	Store  *sqlite.Store
	Cookie session.Cookie
}

func newServer(t *testing.T, cfg serverConfig) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "todo.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	sessStore := cfg.Sessions
	if sessStore == nil {
		mem := session.NewMemoryStore()
		if cfg.Clock != nil {
			mem.WithClock(cfg.Clock.Now)
		}
		sessStore = mem
	}

	mgr, err := session.NewManager(sessStore, testSecret, session.Config{TTL: time.Hour})
	require.NoError(t, err)
	if cfg.Clock != nil {
		mgr.WithClock(cfg.Clock.Now)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slogx.Discard()
	}

	cookie := session.NewCookie("", false)
	router := todohttp.NewRouter(todohttp.Options{
		BuildVersion:   "test",
		AllowedOrigins: []string{testOrigin},
		RequireSession: cfg.RequireSession,
	}, st, mgr, cookie, logger)
	router.UserService = &service.UserService{Store: st}
	router.ListService = &service.ListService{Store: st}
	router.ItemService = &service.ItemService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Store: st, Cookie: cookie}
}

// registerUser registers username on a fresh client and returns it.
func registerUser(t *testing.T, ts *testServer, username string) (*todosdk.Client, *todosdk.User) {
	t.Helper()

	c := todosdk.NewClient(ts.URL)
	user, err := c.Register(t.Context(), todosdk.RegisterRequest{
		Username: username,
		Password: testPassword,
		Name:     "Test " + username,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return c, user
}

func requireAPIError(t *testing.T, err error, want *todosdk.APIError) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, want, "got %v", err)
}
