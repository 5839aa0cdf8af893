package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	token, err := store.Start("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok := store.Get(token)
	require.True(t, ok)
	require.Equal(t, "user-1", userID)
}

func TestGetUnknownToken(t *testing.T) {
	store := NewStore(time.Hour)

	_, ok := store.Get("not-a-token")
	require.False(t, ok)

	_, ok = store.Get("")
	require.False(t, ok)
}

func TestEndDestroysSession(t *testing.T) {
	store := NewStore(time.Hour)

	token, err := store.Start("user-1")
	require.NoError(t, err)

	store.End(token)
	_, ok := store.Get(token)
	require.False(t, ok)
}

func TestEndIsIdempotent(t *testing.T) {
	store := NewStore(time.Hour)

	token, err := store.Start("user-1")
	require.NoError(t, err)

	store.End(token)
	require.NotPanics(t, func() { store.End(token) })
	require.NotPanics(t, func() { store.End("never-existed") })
}

func TestExpiredSessionBehavesAsAbsent(t *testing.T) {
	store := NewStore(-time.Second)

	token, err := store.Start("user-1")
	require.NoError(t, err)

	_, ok := store.Get(token)
	require.False(t, ok)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Start("user-1")
		require.NoError(t, err)
		require.False(t, seen[token])
		seen[token] = true
	}
}
