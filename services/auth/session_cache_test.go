package auth

import (
	"testing"
	"time"

	"neuroglove/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newCacheBackedManager(t *testing.T) (*SessionManager, *miniredis.Miniredis, *memSessionRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := newMemSessionRepo()
	return NewSessionManager(repo, client, time.Hour), mr, repo
}

func storeSession(t *testing.T, repo *memSessionRepo, userID, token string, expiresAt time.Time) {
	t.Helper()
	require.NoError(t, repo.UpsertByToken(&models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}))
}

func TestValidate_CacheTTLBoundedByRemainingLife(t *testing.T) {
	m, mr, repo := newCacheBackedManager(t)

	token := uuid.New().String()
	storeSession(t, repo, "user-1", token, time.Now().Add(2*time.Second))

	userID, err := m.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)

	key := SessionCachePrefix + token
	require.True(t, mr.Exists(key))
	require.LessOrEqual(t, mr.TTL(key), 2*time.Second)

	// A cache hit must not extend the key past the session's expiry.
	userID, err = m.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
	require.LessOrEqual(t, mr.TTL(key), 2*time.Second)
}

func TestValidate_ExpiredSessionNotServedFromCache(t *testing.T) {
	m, mr, repo := newCacheBackedManager(t)

	token := uuid.New().String()
	storeSession(t, repo, "user-1", token, time.Now().Add(time.Second))

	// Poll twice: one store read that populates the cache, one cache hit.
	for i := 0; i < 2; i++ {
		userID, err := m.Validate(token)
		require.NoError(t, err)
		require.Equal(t, "user-1", userID)
	}

	// Past the session's expiry the cache key is gone and the store says
	// expired.
	storeSession(t, repo, "user-1", token, time.Now().Add(-time.Minute))
	mr.FastForward(2 * time.Second)

	require.False(t, mr.Exists(SessionCachePrefix+token))
	userID, err := m.Validate(token)
	require.NoError(t, err)
	require.Empty(t, userID)
}

func TestValidate_LongSessionCachesForAtMostAnHour(t *testing.T) {
	m, mr, repo := newCacheBackedManager(t)

	token := uuid.New().String()
	storeSession(t, repo, "user-1", token, time.Now().Add(DefaultSessionTTL))

	_, err := m.Validate(token)
	require.NoError(t, err)
	require.LessOrEqual(t, mr.TTL(SessionCachePrefix+token), cacheTTL)
}

func TestRevoke_DropsCachedEntry(t *testing.T) {
	m, mr, repo := newCacheBackedManager(t)

	token := uuid.New().String()
	storeSession(t, repo, "user-1", token, time.Now().Add(time.Hour))

	_, err := m.Validate(token)
	require.NoError(t, err)
	require.True(t, mr.Exists(SessionCachePrefix+token))

	require.NoError(t, m.Revoke(token))
	require.False(t, mr.Exists(SessionCachePrefix+token))

	userID, err := m.Validate(token)
	require.NoError(t, err)
	require.Empty(t, userID)
}
