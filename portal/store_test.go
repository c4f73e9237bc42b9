package portal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	store := NewFileTokenStore(t.TempDir())

	token, err := store.Get()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, store.Set("abc"))
	token, err = store.Get()
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	// Tokens are replaced, never refreshed in place
	require.NoError(t, store.Set("def"))
	token, err = store.Get()
	require.NoError(t, err)
	require.Equal(t, "def", token)

	require.NoError(t, store.Delete())
	token, err = store.Get()
	require.NoError(t, err)
	require.Empty(t, token)

	// Deleting an absent token is not an error
	require.NoError(t, store.Delete())
}

func TestFileMessageStoreConsumeIsReadOnce(t *testing.T) {
	store := NewFileMessageStore(t.TempDir())

	message, err := store.Consume()
	require.NoError(t, err)
	require.Empty(t, message)

	require.NoError(t, store.Set("Your session has expired. Please log in again."))

	message, err = store.Consume()
	require.NoError(t, err)
	require.Equal(t, "Your session has expired. Please log in again.", message)

	message, err = store.Consume()
	require.NoError(t, err)
	require.Empty(t, message)
}
