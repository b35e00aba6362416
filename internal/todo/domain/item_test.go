package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParseItemStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"pending", "completed"} {
		got, err := domain.ParseItemStatus(s)
		require.NoError(t, err)
		require.Equal(t, domain.ItemStatus(s), got)
	}

	for _, s := range []string{"", "done", "Completed"} {
		_, err := domain.ParseItemStatus(s)
		require.ErrorIs(t, err, domain.ErrInvalidItemStatus)
	}
}

func TestItemUpdateValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		update  domain.ItemUpdate
		wantErr error
	}{
		{name: "description only", update: domain.ItemUpdate{Description: ptr("Milk")}},
		{name: "status only", update: domain.ItemUpdate{Status: ptr(domain.ItemStatusCompleted)}},
		{name: "both", update: domain.ItemUpdate{Description: ptr("Milk"), Status: ptr(domain.ItemStatusPending)}},
		{name: "nothing", update: domain.ItemUpdate{}, wantErr: domain.ErrEmptyItemUpdate},
		{name: "empty description only", update: domain.ItemUpdate{Description: ptr("")}, wantErr: domain.ErrEmptyItemUpdate},
		{name: "blank description only", update: domain.ItemUpdate{Description: ptr(" \t ")}, wantErr: domain.ErrEmptyItemUpdate},
		{name: "bad status", update: domain.ItemUpdate{Status: ptr(domain.ItemStatus("done"))}, wantErr: domain.ErrInvalidItemStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItemUpdateNormalize(t *testing.T) {
	t.Parallel()

	u := domain.ItemUpdate{Description: ptr(""), Status: ptr(domain.ItemStatusCompleted)}.Normalize()
	require.Nil(t, u.Description)
	require.NotNil(t, u.Status)
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", " ", "\t\n", "\u00a0"} {
		require.True(t, domain.IsBlank(s), "%q", s)
	}
	for _, s := range []string{"Milk", " Milk ", "."} {
		require.False(t, domain.IsBlank(s), "%q", s)
	}
}

func TestSessionExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	s := domain.Session{ExpiresAt: now.Add(time.Minute)}
	require.False(t, s.Expired(now))
	require.True(t, s.Expired(now.Add(time.Minute)))
}

func TestUserPrincipal(t *testing.T) {
	t.Parallel()

	u := domain.User{ID: "01J", Username: "alice", Name: "Alice", PasswordHash: "secret"}
	require.Equal(t, domain.Principal{ID: "01J", Username: "alice", Name: "Alice"}, u.Principal())
	require.True(t, domain.Principal{}.IsZero())
}
