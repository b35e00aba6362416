package app

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		DatabaseURL:          filepath.Join(dir, "todo.db"),
		AllowedOrigins:       []string{"http://localhost:5173"},
		SessionBackend:       SessionBackendMemory,
		SessionTTL:           time.Hour,
		SessionCookie:        "todo.sid",
		PepperFile:           filepath.Join(dir, "pepper"),
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		Port:                 3000,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Minute,
	}
}

func TestNewServesAPI(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, application.Shutdown()) })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	c := todosdk.NewClient(srv.URL)
	ready, err := c.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, BuildVersion, ready.Version)

	user, err := c.Register(t.Context(), todosdk.RegisterRequest{
		Username: "nina",
		Password: "hunter2",
		Name:     "Nina",
	})
	require.NoError(t, err)
	require.Equal(t, "nina", user.Username)

	sess, err := c.GetSession(t.Context())
	require.NoError(t, err)
	require.True(t, sess.Session)

	list, err := c.CreateList(t.Context(), "Groceries")
	require.NoError(t, err)
	_, err = c.CreateItem(t.Context(), list.ID, "milk")
	require.NoError(t, err)
}

func TestBuildVersionIsReported(t *testing.T) {
	prev := BuildVersion
	BuildVersion = "v9.9.9-ci"
	t.Cleanup(func() { BuildVersion = prev })

	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, application.Shutdown()) })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	live, err := todosdk.NewClient(srv.URL).GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "v9.9.9-ci", live.Version)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.SessionBackend = "memcached"

	_, err := New(cfg)
	require.ErrorContains(t, err, "invalid configuration")
}

func TestNewFailsOnUnreachableRedis(t *testing.T) {
	cfg := testConfig(t)
	cfg.SessionBackend = SessionBackendRedis
	cfg.RedisAddr = "127.0.0.1:1"

	_, err := New(cfg)
	require.ErrorContains(t, err, "redis")
}

func TestDataSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg)
	require.NoError(t, err)
	srv := httptest.NewServer(first.Handler())
	c := todosdk.NewClient(srv.URL)
	_, err = c.CreateList(t.Context(), "Persistent")
	require.NoError(t, err)
	srv.Close()
	require.NoError(t, first.Shutdown())

	second, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, second.Shutdown()) })
	srv = httptest.NewServer(second.Handler())
	t.Cleanup(srv.Close)

	lists, err := todosdk.NewClient(srv.URL).ListLists(t.Context())
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.Equal(t, "Persistent", lists[0].Title)
}
