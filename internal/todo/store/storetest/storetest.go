// Package storetest holds behaviour tests shared by every store driver.
package storetest

import (
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty, migrated store that lives until the test ends.
type Factory func(t *testing.T) store.Store

// Run exercises the store contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(*testing.T, Factory)
	}{
		{name: "Users", fn: testUsers},
		{name: "ListsOrdering", fn: testListsOrdering},
		{name: "ListLookupAndDelete", fn: testListLookupAndDelete},
		{name: "Items", fn: testItems},
		{name: "DeleteListCascades", fn: testDeleteListCascades},
		{name: "WithTxRollsBack", fn: testWithTxRollsBack},
		{name: "ConcurrentItemCreation", fn: testConcurrentItemCreation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore)
		})
	}
}

func ptr[T any](v T) *T { return &v }

func createList(t *testing.T, s store.Store, title string, at time.Time) domain.List {
	t.Helper()

	l := domain.List{ID: idx.NewUUID(), Title: title, Status: domain.ListStatusPending, CreatedAt: at}
	require.NoError(t, s.Lists().CreateList(t.Context(), l))
	return l
}

func createItem(t *testing.T, s store.Store, listID, desc string, at time.Time) domain.Item {
	t.Helper()

	it := domain.Item{
		ID:          idx.NewUUID(),
		ListID:      listID,
		Description: desc,
		Status:      domain.ItemStatusPending,
		CreatedAt:   at,
	}
	require.NoError(t, s.Items().CreateItem(t.Context(), it))
	return it
}

func testUsers(t *testing.T, newStore Factory) {
	s := newStore(t)
	ctx := t.Context()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		Name:         "Alice",
		PasswordHash: "$argon2id$dummy",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	t.Run("lookup by username is exact", func(t *testing.T) {
		got, err := s.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, "Alice", got.Name)

		_, err = s.Users().GetUserByUsername(ctx, "Alice")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		dup := u
		dup.ID = idx.New().String()
		dup.Name = "Other"
		err := s.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		got, err := s.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, "Alice", got.Name, "original row must be untouched")
	})

	t.Run("password hash update", func(t *testing.T) {
		require.NoError(t, s.Users().UpdatePasswordHash(ctx, u.ID, "$argon2id$new"))
		got, err := s.Users().GetUserByUsername(ctx, u.Username)
		require.NoError(t, err)
		require.Equal(t, "$argon2id$new", got.PasswordHash)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := s.Users().GetUserByUsername(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func testListsOrdering(t *testing.T, newStore Factory) {
	s := newStore(t)
	base := time.Now().UTC().Add(-time.Hour)

	first := createList(t, s, "first", base)
	second := createList(t, s, "second", base.Add(time.Second))
	third := createList(t, s, "third", base.Add(2*time.Second))

	lists, err := s.Lists().ListLists(t.Context())
	require.NoError(t, err)
	require.Len(t, lists, 3)
	require.Equal(t, []string{third.ID, second.ID, first.ID},
		[]string{lists[0].ID, lists[1].ID, lists[2].ID})
	require.Equal(t, domain.ListStatusPending, lists[0].Status)
	require.WithinDuration(t, third.CreatedAt, lists[0].CreatedAt, time.Millisecond)
}

func testListLookupAndDelete(t *testing.T, newStore Factory) {
	s := newStore(t)
	ctx := t.Context()
	l := createList(t, s, "Groceries", time.Now().UTC())

	got, err := s.Lists().GetListByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "Groceries", got.Title)

	require.NoError(t, s.Lists().DeleteList(ctx, l.ID))
	_, err = s.Lists().GetListByID(ctx, l.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Unknown ids are a no-op
	require.NoError(t, s.Lists().DeleteList(ctx, l.ID))
}

func testItems(t *testing.T, newStore Factory) {
	s := newStore(t)
	ctx := t.Context()
	base := time.Now().UTC()
	l := createList(t, s, "Groceries", base)

	milk := createItem(t, s, l.ID, "Milk", base)
	eggs := createItem(t, s, l.ID, "Eggs", base.Add(time.Millisecond))

	t.Run("oldest first", func(t *testing.T) {
		items, err := s.Items().ListItemsByList(ctx, l.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.Equal(t, milk.ID, items[0].ID)
		require.Equal(t, eggs.ID, items[1].ID)
	})

	t.Run("unknown list yields empty slice", func(t *testing.T) {
		items, err := s.Items().ListItemsByList(ctx, "missing")
		require.NoError(t, err)
		require.NotNil(t, items)
		require.Empty(t, items)
	})

	t.Run("create under unknown list", func(t *testing.T) {
		it := domain.Item{
			ID:          idx.NewUUID(),
			ListID:      "missing",
			Description: "orphan",
			Status:      domain.ItemStatusPending,
			CreatedAt:   base,
		}
		require.ErrorIs(t, s.Items().CreateItem(ctx, it), store.ErrNotFound)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		got, err := s.Items().UpdateItem(ctx, milk.ID, domain.ItemUpdate{Status: ptr(domain.ItemStatusCompleted)})
		require.NoError(t, err)
		require.Equal(t, "Milk", got.Description)
		require.Equal(t, domain.ItemStatusCompleted, got.Status)

		got, err = s.Items().UpdateItem(ctx, milk.ID, domain.ItemUpdate{Description: ptr("Oat milk")})
		require.NoError(t, err)
		require.Equal(t, "Oat milk", got.Description)
		require.Equal(t, domain.ItemStatusCompleted, got.Status)
	})

	t.Run("empty description is ignored", func(t *testing.T) {
		got, err := s.Items().UpdateItem(ctx, eggs.ID, domain.ItemUpdate{
			Description: ptr(""),
			Status:      ptr(domain.ItemStatusCompleted),
		})
		require.NoError(t, err)
		require.Equal(t, "Eggs", got.Description)
	})

	t.Run("update unknown id", func(t *testing.T) {
		_, err := s.Items().UpdateItem(ctx, "missing", domain.ItemUpdate{Description: ptr("x")})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Items().DeleteItem(ctx, eggs.ID))
		require.NoError(t, s.Items().DeleteItem(ctx, eggs.ID))

		items, err := s.Items().ListItemsByList(ctx, l.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
	})
}

func testDeleteListCascades(t *testing.T, newStore Factory) {
	s := newStore(t)
	ctx := t.Context()
	now := time.Now().UTC()

	l := createList(t, s, "Work", now)
	other := createList(t, s, "Home", now)
	createItem(t, s, l.ID, "a", now)
	createItem(t, s, l.ID, "b", now)
	kept := createItem(t, s, other.ID, "c", now)

	// Foreign key alone removes the children
	require.NoError(t, s.Lists().DeleteList(ctx, l.ID))

	items, err := s.Items().ListItemsByList(ctx, l.ID)
	require.NoError(t, err)
	require.Empty(t, items)

	items, err = s.Items().ListItemsByList(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, kept.ID, items[0].ID)
}

func testWithTxRollsBack(t *testing.T, newStore Factory) {
	s := newStore(t)
	ctx := t.Context()
	l := createList(t, s, "Work", time.Now().UTC())
	createItem(t, s, l.ID, "a", time.Now().UTC())

	boom := store.ErrNotFound
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Items().DeleteItemsByList(ctx, l.ID))
		require.NoError(t, tx.Lists().DeleteList(ctx, l.ID))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Lists().GetListByID(ctx, l.ID)
	require.NoError(t, err, "list must survive a rolled back tx")

	items, err := s.Items().ListItemsByList(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func testConcurrentItemCreation(t *testing.T, newStore Factory) {
	s := newStore(t)
	ctx := t.Context()
	l := createList(t, s, "Party", time.Now().UTC())

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Items().CreateItem(ctx, domain.Item{
				ID:          idx.NewUUID(),
				ListID:      l.ID,
				Description: "item",
				Status:      domain.ItemStatusPending,
				CreatedAt:   time.Now().UTC().Add(time.Duration(i) * time.Microsecond),
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	items, err := s.Items().ListItemsByList(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, items, n)

	seen := make(map[string]struct{}, n)
	for _, it := range items {
		seen[it.ID] = struct{}{}
	}
	require.Len(t, seen, n)
}
