package service

import (
	"context"
	"testing"

	"github.com/nlefevre/biosite/internal/domain"
	"github.com/nlefevre/biosite/internal/store"
	"github.com/stretchr/testify/require"
)

func TestUpdateBio(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts := &AccountService{Store: st}
	profiles := &ProfileService{Store: st}

	require.NoError(t, accounts.Register(ctx, "bob", "pw", "203.0.113.1"))

	require.NoError(t, profiles.UpdateBio(ctx, "bob", "hello"))
	account, err := profiles.Get(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, "hello", account.Bio)

	// An empty submission stores an empty bio, not the placeholder.
	require.NoError(t, profiles.UpdateBio(ctx, "bob", ""))
	account, err = profiles.Get(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, "", account.Bio)
}

func TestUpdateBioUnknownAccount(t *testing.T) {
	ctx := context.Background()
	profiles := &ProfileService{Store: newTestStore(t)}

	err := profiles.UpdateBio(ctx, "ghost", "boo")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateStyle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts := &AccountService{Store: st}
	profiles := &ProfileService{Store: st}

	require.NoError(t, accounts.Register(ctx, "bob", "pw", "203.0.113.1"))

	t.Run("stores the submitted pair", func(t *testing.T) {
		style := domain.Style{Background: "#123456", Text: "#654321"}
		require.NoError(t, profiles.UpdateStyle(ctx, "bob", style))

		account, err := profiles.Get(ctx, "bob")
		require.NoError(t, err)
		require.NotNil(t, account.Style)
		require.Equal(t, style, *account.Style)
	})

	t.Run("empty values fall back to the defaults", func(t *testing.T) {
		require.NoError(t, profiles.UpdateStyle(ctx, "bob", domain.Style{Text: "#112233"}))

		account, err := profiles.Get(ctx, "bob")
		require.NoError(t, err)
		require.Equal(t, domain.DefaultStyle.Background, account.Style.Background)
		require.Equal(t, "#112233", account.Style.Text)

		require.NoError(t, profiles.UpdateStyle(ctx, "bob", domain.Style{}))
		account, err = profiles.Get(ctx, "bob")
		require.NoError(t, err)
		require.Equal(t, domain.DefaultStyle, *account.Style)
	})
}
