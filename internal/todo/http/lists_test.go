package http_test

import (
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListLists(t *testing.T) {
	ts := newServer(t, serverConfig{})
	c := todosdk.NewClient(ts.URL)
	ctx := t.Context()

	lists, err := c.ListLists(ctx)
	require.NoError(t, err)
	require.Empty(t, lists)

	var created []*todosdk.List
	for _, title := range []string{"Groceries", "Chores", "Errands"} {
		l, err := c.CreateList(ctx, title)
		require.NoError(t, err)
		require.NotEmpty(t, l.ID)
		require.Equal(t, title, l.Title)
		require.Equal(t, "pending", l.Status)
		require.False(t, l.CreatedAt.IsZero())
		created = append(created, l)
	}

	lists, err = c.ListLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 3)

	// Newest first
	require.Equal(t, created[2].ID, lists[0].ID)
	require.Equal(t, created[1].ID, lists[1].ID)
	require.Equal(t, created[0].ID, lists[2].ID)

	got, err := c.GetList(ctx, created[1].ID)
	require.NoError(t, err)
	require.Equal(t, "Chores", got.Title)
}

func TestCreateListRequiresTitle(t *testing.T) {
	ts := newServer(t, serverConfig{})
	c := todosdk.NewClient(ts.URL)

	for _, title := range []string{"", "   "} {
		_, err := c.CreateList(t.Context(), title)
		requireAPIError(t, err, todosdk.ErrTitleRequired)

		var apiErr *todosdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusOK, apiErr.StatusCode)
	}

	lists, err := c.ListLists(t.Context())
	require.NoError(t, err)
	require.Empty(t, lists)
}

func TestGetUnknownList(t *testing.T) {
	ts := newServer(t, serverConfig{})
	c := todosdk.NewClient(ts.URL)

	_, err := c.GetList(t.Context(), "does-not-exist")
	requireAPIError(t, err, todosdk.ErrListNotFound)
}

func TestDeleteListRemovesItems(t *testing.T) {
	ts := newServer(t, serverConfig{})
	c := todosdk.NewClient(ts.URL)
	ctx := t.Context()

	keep, err := c.CreateList(ctx, "Keep")
	require.NoError(t, err)
	drop, err := c.CreateList(ctx, "Drop")
	require.NoError(t, err)

	_, err = c.CreateItem(ctx, keep.ID, "stays")
	require.NoError(t, err)
	for _, d := range []string{"one", "two"} {
		_, err := c.CreateItem(ctx, drop.ID, d)
		require.NoError(t, err)
	}

	require.NoError(t, c.DeleteList(ctx, drop.ID))

	lists, err := c.ListLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.Equal(t, keep.ID, lists[0].ID)

	items, err := c.ListItems(ctx, drop.ID)
	require.NoError(t, err)
	require.Empty(t, items)

	items, err = c.ListItems(ctx, keep.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = c.GetList(ctx, drop.ID)
	requireAPIError(t, err, todosdk.ErrListNotFound)
}

func TestDeleteUnknownListSucceeds(t *testing.T) {
	ts := newServer(t, serverConfig{})
	c := todosdk.NewClient(ts.URL)

	require.NoError(t, c.DeleteList(t.Context(), "does-not-exist"))
}

func TestConcurrentListCreation(t *testing.T) {
	ts := newServer(t, serverConfig{})
	c := todosdk.NewClient(ts.URL)

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.CreateList(t.Context(), "list "+string(rune('a'+i)))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	lists, err := c.ListLists(t.Context())
	require.NoError(t, err)
	require.Len(t, lists, n)
}

func TestListMutationsLoggedOnce(t *testing.T) {
	logs := &logBuffer{}
	ts := newServer(t, serverConfig{Logger: slog.New(slog.NewJSONHandler(logs, nil))})
	c := todosdk.NewClient(ts.URL)

	l, err := c.CreateList(t.Context(), "Groceries")
	require.NoError(t, err)
	require.NoError(t, c.DeleteList(t.Context(), l.ID))

	require.Equal(t, 1, logs.count("list created"))
	require.Equal(t, 1, logs.count("list deleted"))
}
