package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	sessionRepo "neuroglove/database/repository/session"
	"neuroglove/models"
	"neuroglove/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCachePrefix namespaces session tokens in the Redis cache.
const SessionCachePrefix = "session:"

// cacheTTL bounds how long a validated token stays cached.
const cacheTTL = time.Hour

// DefaultSessionTTL is used when no lifetime is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour

// issueAttempts bounds token regeneration on a unique-index conflict.
// Collisions are structurally near-impossible at this entropy; the retry
// only covers the store-level race the unique index surfaces.
const issueAttempts = 3

// SessionManager issues, validates, and revokes sessions. Validation goes
// through the Redis cache when one is present and falls back to the store;
// a nil cache client disables caching entirely.
type SessionManager struct {
	Repo  sessionRepo.SessionRepository
	Cache *redis.Client
	TTL   time.Duration
}

// NewSessionManager wires a session manager over the given store and
// optional cache.
func NewSessionManager(repo sessionRepo.SessionRepository, cache *redis.Client, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{Repo: repo, Cache: cache, TTL: ttl}
}

// Issue generates an opaque token for the user, persists the session, and
// returns the token with its expiry.
func (m *SessionManager) Issue(userID string) (string, time.Time, error) {
	for attempt := 0; attempt < issueAttempts; attempt++ {
		now := time.Now()
		session := &models.Session{
			ID:        uuid.New().String(),
			UserID:    userID,
			Token:     uuid.New().String(),
			ExpiresAt: now.Add(m.TTL),
			CreatedAt: now,
		}
		err := m.Repo.Create(session)
		if errors.Is(err, sessionRepo.ErrTokenExists) {
			utils.GetLogger().Warn("Session token collision, regenerating",
				zap.String("userID", userID))
			continue
		}
		if err != nil {
			return "", time.Time{}, fmt.Errorf("failed to issue session: %w", err)
		}
		return session.Token, session.ExpiresAt, nil
	}
	return "", time.Time{}, fmt.Errorf("failed to issue session after %d attempts", issueAttempts)
}

// IssueToken persists a session under a caller-supplied token, overwriting
// any session already stored for it. Used for bridge-supplied tokens.
func (m *SessionManager) IssueToken(userID, token string) (time.Time, error) {
	if m.Cache != nil {
		// Drop any stale cached mapping for the token before overwriting.
		if err := m.Cache.Del(context.Background(), SessionCachePrefix+token).Err(); err != nil {
			utils.GetLogger().Warn("Failed to clear cached session", zap.Error(err))
		}
	}

	now := time.Now()
	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: now.Add(m.TTL),
		CreatedAt: now,
	}
	if err := m.Repo.UpsertByToken(session); err != nil {
		return time.Time{}, fmt.Errorf("failed to issue session: %w", err)
	}
	return session.ExpiresAt, nil
}

// Validate maps a token to its user ID. An unknown, revoked, or expired
// token yields ("", nil); expired sessions are not purged here.
func (m *SessionManager) Validate(token string) (string, error) {
	ctx := context.Background()
	cacheKey := SessionCachePrefix + token

	if m.Cache != nil {
		// The key's TTL was bounded by the session's remaining life when
		// it was written; a hit must not extend it past expiry.
		userID, err := m.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			return userID, nil
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("Session cache lookup failed, falling back to store", zap.Error(err))
		}
	}

	session, err := m.Repo.GetByToken(token)
	if err != nil {
		return "", fmt.Errorf("failed to validate session: %w", err)
	}
	if session == nil || session.Expired(time.Now()) {
		return "", nil
	}

	if m.Cache != nil {
		ttl := cacheTTL
		if remaining := time.Until(session.ExpiresAt); remaining < ttl {
			ttl = remaining
		}
		_ = m.Cache.Set(ctx, cacheKey, session.UserID, ttl).Err()
	}
	return session.UserID, nil
}

// Revoke deletes the session for a token. Revoking an unknown token is not
// an error.
func (m *SessionManager) Revoke(token string) error {
	if m.Cache != nil {
		if err := m.Cache.Del(context.Background(), SessionCachePrefix+token).Err(); err != nil {
			utils.GetLogger().Warn("Failed to clear cached session", zap.Error(err))
		}
	}
	if err := m.Repo.DeleteByToken(token); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
