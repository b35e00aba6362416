//go:build e2e

package todo_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies /login is limited to 5 attempts per minute per
// IP and username with the production defaults.
func TestRateLimitLogin(t *testing.T) {
	baseURL := setupTodoContainer(t, nil)
	client := todosdk.NewClient(baseURL)

	for i := range 5 {
		_, err := client.Login(t.Context(), "nobody", "wrong")
		requireAPIErrorIs(t, err, todosdk.ErrUserNotFound)
		t.Logf("attempt %d rejected without rate limit", i+1)
	}

	_, err := client.Login(t.Context(), "nobody", "wrong")
	var apiErr *todosdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}
