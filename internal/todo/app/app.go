// Package app wires configuration, storage, sessions and the HTTP API into
// a runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/todo/internal/todo/http"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/session"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/postgres"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

// BuildVersion is reported by the health endpoints. Release builds set it
// with -ldflags "-X github.com/aussiebroadwan/todo/internal/todo/app.BuildVersion=...".
var BuildVersion = "v0.1.0"

const startupTimeout = 15 * time.Second

// Application holds the to-do service and all of its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	redis    *redis.Client
	sessions *session.Manager

	// Services
	userService         *service.UserService
	listService         *service.ListService
	itemService         *service.ItemService
	housekeepingService *service.HousekeepingService
	running             bool

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialised.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "todo-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)
	if err := cryptox.LoadPepper(); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initSessions(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the HTTP handler serving the API.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()
	app.running = true

	app.logger.Info("todo service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.Shutdown()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops background work and closes the
// stores.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down todo service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.running {
		app.housekeepingService.Stop()
		app.running = false
	}

	var errs []error
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
			errs = append(errs, err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		errs = append(errs, err)
	}

	app.logger.Info("todo service stopped")
	return errors.Join(errs...)
}

// initDatabase opens the configured driver and applies migrations.
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db     store.Store
		driver string
		err    error
	)
	if app.cfg.UsesPostgres() {
		driver = "postgres"
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	} else {
		driver = "sqlite"
		db, err = sqlite.NewStore(app.cfg.DatabaseURL)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize %s database: %w", driver, err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", driver)
	return nil
}

// initSessions builds the session store and the cookie signer.
func (app *Application) initSessions(ctx context.Context) error {
	var st session.Store
	switch app.cfg.SessionBackend {
	case SessionBackendRedis:
		app.redis = redis.NewClient(&redis.Options{
			Addr:     app.cfg.RedisAddr,
			Password: app.cfg.RedisPassword,
			DB:       app.cfg.RedisDB,
		})
		if err := app.redis.Ping(ctx).Err(); err != nil {
			_ = app.redis.Close()
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		st = session.NewRedisStore(app.redis, session.DefaultRedisPrefix)
	default:
		st = session.NewMemoryStore()
	}

	secret := []byte(app.cfg.SessionSecret)
	if len(secret) == 0 {
		// Dev only; Validate rejects this in production. Sessions do not
		// survive a restart.
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = []byte(token)
		app.logger.Warn("SESSION_SECRET not set, using a random per-process secret")
	}

	mgr, err := session.NewManager(st, secret, session.Config{TTL: app.cfg.SessionTTL})
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}
	app.sessions = mgr

	app.logger.Info("session store ready", "backend", app.cfg.SessionBackend, "ttl", app.cfg.SessionTTL)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.listService = &service.ListService{Store: app.db}
	app.itemService = &service.ItemService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.sessions,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	// Validate has already rejected malformed entries
	proxies, _ := httpx.ParseTrustedProxies(app.cfg.TrustedProxies)
	httpx.SetTrustedProxies(proxies)

	router := httpapi.NewRouter(
		httpapi.Options{
			BuildVersion:   BuildVersion,
			AllowedOrigins: app.cfg.AllowedOrigins,
			RequireSession: app.cfg.RequireSession,
		},
		app.db,
		app.sessions,
		session.NewCookie(app.cfg.SessionCookie, app.cfg.IsProduction()),
		app.logger,
	)

	router.UserService = app.userService
	router.ListService = app.listService
	router.ItemService = app.itemService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
