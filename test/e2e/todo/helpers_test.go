//go:build e2e

package todo_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared assertions for the to-do service end-to-end
 * tests. The image is built once from cmd/todo/Dockerfile.
 */

const (
	testImageName = "todo-service-test:latest"
	testPassword  = "Passw0rd!"
)

// relaxedRateLimits lifts the production limits; tests fire many requests
// from a single address.
var relaxedRateLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_WINDOW_SEC": "60",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
	"RATELIMIT_LENIENT_REQUESTS":  "1000",
	"RATELIMIT_LENIENT_BURST":     "1000",
}

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building To-Do Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up To-Do Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/todo/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Image might not exist
}

// setupTodoContainer starts the service with env merged over the test
// defaults and returns its base URL.
func setupTodoContainer(t *testing.T, env map[string]string) string {
	t.Helper()
	ctx := context.Background()

	containerEnv := map[string]string{
		"ENV":            "test",
		"LOG_LEVEL":      "info",
		"LOG_FORMAT":     "json",
		"SESSION_SECRET": "e2e-session-secret-0123456789abcdef",
	}
	for k, v := range env {
		containerEnv[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"3000/tcp"},
		Env:          containerEnv,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("3000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "3000")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// registerUser creates an account on a fresh client, which then holds the
// session cookie.
func registerUser(t *testing.T, baseURL, username string) *todosdk.Client {
	t.Helper()

	client := todosdk.NewClient(baseURL)
	user, err := client.Register(t.Context(), todosdk.RegisterRequest{
		Username: username,
		Password: testPassword,
		Name:     "E2E " + username,
	})
	require.NoError(t, err, "Register should succeed")
	require.NotEmpty(t, user.ID)

	return client
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *todosdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
