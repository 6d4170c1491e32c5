package token

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (Store, Medium, Medium) {
	t.Helper()

	cookie, err := NewCookieMedium(filepath.Join(t.TempDir(), "cookie.json"))
	require.NoError(t, err)

	durable, err := NewCookieMedium(filepath.Join(t.TempDir(), "durable.json"))
	require.NoError(t, err)

	return NewStore(cookie, durable, logger.Nop()), cookie, durable
}

func TestStore_SetWritesBothMedia(t *testing.T) {
	s, cookie, durable := newTestStore(t)

	require.NoError(t, s.SetAccessToken("access-1"))
	require.NoError(t, s.SetRefreshToken("refresh-1"))

	for _, m := range []Medium{cookie, durable} {
		got, err := m.Get(AccessTokenKey)
		require.NoError(t, err)
		assert.Equal(t, "access-1", got)

		got, err = m.Get(RefreshTokenKey)
		require.NoError(t, err)
		assert.Equal(t, "refresh-1", got)
	}
}

func TestStore_ReadPrefersCookie(t *testing.T) {
	s, cookie, durable := newTestStore(t)

	require.NoError(t, cookie.Set(AccessTokenKey, "from-cookie", 0))
	require.NoError(t, durable.Set(AccessTokenKey, "from-durable", 0))

	assert.Equal(t, "from-cookie", s.AccessToken())
}

func TestStore_FallsBackToDurable(t *testing.T) {
	s, cookie, durable := newTestStore(t)

	require.NoError(t, s.SetAccessToken("access-1"))

	// clearing one medium must not break authentication
	require.NoError(t, cookie.Delete(AccessTokenKey))
	assert.Equal(t, "access-1", s.AccessToken())

	require.NoError(t, durable.Delete(AccessTokenKey))
	assert.Equal(t, "", s.AccessToken())
}

func TestStore_ClearRemovesBothMedia(t *testing.T) {
	s, cookie, durable := newTestStore(t)

	require.NoError(t, s.SetAccessToken("access-1"))
	require.NoError(t, s.SetRefreshToken("refresh-1"))

	require.NoError(t, s.Clear())

	assert.Equal(t, "", s.AccessToken())
	assert.Equal(t, "", s.RefreshToken())

	for _, m := range []Medium{cookie, durable} {
		_, err := m.Get(AccessTokenKey)
		assert.ErrorIs(t, err, ErrTokenNotFound)
		_, err = m.Get(RefreshTokenKey)
		assert.ErrorIs(t, err, ErrTokenNotFound)
	}
}

func TestCookieMedium_Expiry(t *testing.T) {
	cookie, err := NewCookieMedium(filepath.Join(t.TempDir(), "cookie.json"))
	require.NoError(t, err)

	require.NoError(t, cookie.Set("k", "v", time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, err = cookie.Get("k")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestCookieMedium_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie.json")

	first, err := NewCookieMedium(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(AccessTokenKey, "persisted", time.Hour))

	second, err := NewCookieMedium(path)
	require.NoError(t, err)

	got, err := second.Get(AccessTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestCookieMedium_DeleteAbsentKey(t *testing.T) {
	cookie, err := NewCookieMedium(filepath.Join(t.TempDir(), "cookie.json"))
	require.NoError(t, err)

	assert.NoError(t, cookie.Delete("never-set"))
}
