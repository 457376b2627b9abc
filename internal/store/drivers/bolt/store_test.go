package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nlefevre/biosite/internal/domain"
	"github.com/nlefevre/biosite/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "biosite.db")

	st, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st, path
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, path := newTestStore(t)

	style := domain.Style{Background: "#222222", Text: "#eeeeee"}
	require.NoError(t, st.Accounts().Put(ctx, domain.Account{
		Username:       "alice",
		PasswordDigest: "digest-a",
		Bio:            "salut",
		Style:          &style,
	}))
	require.NoError(t, st.Sessions().Create(ctx, "tok1", "alice"))
	require.NoError(t, st.Registrations().Record(ctx, "203.0.113.7", "alice"))

	require.NoError(t, st.Close())

	reloaded, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reloaded.Close() })

	alice, err := reloaded.Accounts().Get(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "digest-a", alice.PasswordDigest)
	require.Equal(t, "salut", alice.Bio)
	require.NotNil(t, alice.Style)
	require.Equal(t, style, *alice.Style)

	owner, err := reloaded.Sessions().Owner(ctx, "tok1")
	require.NoError(t, err)
	require.Equal(t, "alice", owner)

	registrant, err := reloaded.Registrations().Lookup(ctx, "203.0.113.7")
	require.NoError(t, err)
	require.Equal(t, "alice", registrant)
}

func TestNotFoundAndIdempotentDelete(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	_, err := st.Accounts().Get(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Sessions().Owner(ctx, "unknown")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Registrations().Lookup(ctx, "198.51.100.1")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Sessions().Delete(ctx, "unknown"))
}
