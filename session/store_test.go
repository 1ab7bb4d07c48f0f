package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), ".pvndora_session"))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Save("bearer-token-1"))
	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "bearer-token-1", token)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
	// Повторная очистка не ошибка
	assert.NoError(t, store.Clear())
}

func TestCookieRoundTrip(t *testing.T) {
	value, err := IssueCookie("secret", "bearer-abc", time.Hour)
	require.NoError(t, err)

	bearer, err := ParseCookie("secret", value)
	require.NoError(t, err)
	assert.Equal(t, "bearer-abc", bearer)

	_, err = ParseCookie("wrong-secret", value)
	assert.Error(t, err)

	expired, err := IssueCookie("secret", "bearer-abc", -time.Minute)
	require.NoError(t, err)
	_, err = ParseCookie("secret", expired)
	assert.Error(t, err)
}
