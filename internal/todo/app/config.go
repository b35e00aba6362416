package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/joho/godotenv"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	DatabaseURL    string   // postgres:// URL or SQLite file path (default: todo.db)
	SessionSecret  string   // HS256 key for the session cookie; required in prod
	AllowedOrigins []string // CORS allow-list (default: http://localhost:5173)
	RequireSession bool     // Reject anonymous list/item requests (default: false)
	TrustedProxies []string // CIDRs allowed to set X-Forwarded-For (default: none)

	SessionBackend string        // memory or redis (default: memory)
	SessionTTL     time.Duration // Session window (default: 24h)
	SessionCookie  string        // Cookie name (default: todo.sid)
	RedisAddr      string        // Redis address (default: localhost:6379)
	RedisPassword  string        // Optional
	RedisDB        int           // Redis database number (default: 0)

	PepperFile           string        // Path to the password pepper file (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 3000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-session sweep interval (default: 15m)
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment variables
// win over it.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseURL:    getEnvOrDefault("DATABASE_URL", "todo.db"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AllowedOrigins: splitList(getEnvOrDefault("TODO_ALLOWED_ORIGINS", "http://localhost:5173")),
		RequireSession: getEnvBoolOrDefault("TODO_REQUIRE_SESSION", false),
		TrustedProxies: getEnvListOrNil("TRUSTED_PROXIES"),

		SessionBackend: strings.ToLower(getEnvOrDefault("TODO_SESSION_BACKEND", SessionBackendMemory)),
		SessionTTL:     getEnvDurationOrDefault("TODO_SESSION_TTL", 24*time.Hour),
		SessionCookie:  getEnvOrDefault("TODO_SESSION_COOKIE", "todo.sid"),
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvIntOrDefault("REDIS_DB", 0),

		PepperFile:           getEnvOrDefault("TODO_PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 15*time.Minute),
	}
}

// IsProduction reports whether the service runs behind TLS on another
// origin than its browser client.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

// UsesPostgres reports whether DatabaseURL selects the Postgres driver.
func (c Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error

	if c.IsProduction() && c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required in production"))
	}
	if c.SessionBackend != SessionBackendMemory && c.SessionBackend != SessionBackendRedis {
		errs = append(errs, fmt.Errorf("unknown session backend %q", c.SessionBackend))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("session ttl must be positive, got %s", c.SessionTTL))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL must not be empty"))
	}
	for i, origin := range c.AllowedOrigins {
		if origin == "" {
			errs = append(errs, fmt.Errorf("allowed origin %d is empty", i))
		}
	}
	if _, err := httpx.ParseTrustedProxies(c.TrustedProxies); err != nil {
		errs = append(errs, err)
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}

	return errors.Join(errs...)
}

// splitList splits a comma separated value, keeping empty entries so
// Validate can reject them.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func getEnvListOrNil(key string) []string {
	if value := os.Getenv(key); value != "" {
		return splitList(value)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
