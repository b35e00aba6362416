//go:build e2e

package todo_test

import (
	"testing"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

// TestTodoFlow walks a user through the whole API: sign up, manage a list
// and its items, log out and back in.
func TestTodoFlow(t *testing.T) {
	baseURL := setupTodoContainer(t, relaxedRateLimits)
	ctx := t.Context()

	client := registerUser(t, baseURL, "olivia")

	sess, err := client.GetSession(ctx)
	require.NoError(t, err)
	require.True(t, sess.Session)
	require.Equal(t, "olivia", sess.User.Username)

	list, err := client.CreateList(ctx, "Weekend")
	require.NoError(t, err)
	require.Equal(t, "pending", list.Status)

	mow, err := client.CreateItem(ctx, list.ID, "Mow the lawn")
	require.NoError(t, err)
	_, err = client.CreateItem(ctx, list.ID, "Wash the car")
	require.NoError(t, err)

	done, err := client.UpdateItem(ctx, mow.ID, todosdk.UpdateItemRequest{Status: new(string)})
	requireAPIErrorIs(t, err, todosdk.ErrInvalidStatus)
	require.Nil(t, done)

	completed := todosdk.ItemStatusCompleted
	done, err = client.UpdateItem(ctx, mow.ID, todosdk.UpdateItemRequest{Status: &completed})
	require.NoError(t, err)
	require.Equal(t, todosdk.ItemStatusCompleted, done.Status)
	require.Equal(t, "Mow the lawn", done.Description)

	items, err := client.ListItems(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, mow.ID, items[0].ID)

	require.NoError(t, client.Logout(ctx))
	sess, err = client.GetSession(ctx)
	require.NoError(t, err)
	require.False(t, sess.Session)

	_, err = client.Login(ctx, "olivia", "wrong")
	requireAPIErrorIs(t, err, todosdk.ErrIncorrectPassword)
	_, err = client.Login(ctx, "olivia", testPassword)
	require.NoError(t, err)

	require.NoError(t, client.DeleteList(ctx, list.ID))
	items, err = client.ListItems(ctx, list.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestRequireSessionMode(t *testing.T) {
	env := map[string]string{"TODO_REQUIRE_SESSION": "true"}
	for k, v := range relaxedRateLimits {
		env[k] = v
	}
	baseURL := setupTodoContainer(t, env)

	_, err := todosdk.NewClient(baseURL).ListLists(t.Context())
	requireAPIErrorIs(t, err, todosdk.ErrNotAuthenticated)

	client := registerUser(t, baseURL, "peggy")
	lists, err := client.ListLists(t.Context())
	require.NoError(t, err)
	require.Empty(t, lists)
}

func requireAPIErrorIs(t *testing.T, err error, want *todosdk.APIError) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, want, "got %v", err)
}
