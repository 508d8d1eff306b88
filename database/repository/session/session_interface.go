package sessionRepo

import (
	"errors"

	"neuroglove/models"
)

// ErrTokenExists is returned by Create when the unique token index rejects
// the insert; the caller regenerates the token and retries.
var ErrTokenExists = errors.New("session token already exists")

// SessionRepository defines methods for session data access.
type SessionRepository interface {
	// Create inserts a new session record. Returns ErrTokenExists when the
	// token collides with a live session.
	Create(session *models.Session) error
	// UpsertByToken inserts or overwrites the session stored under the
	// session's token. Used for bridge-supplied tokens.
	UpsertByToken(session *models.Session) error
	// GetByToken retrieves a session by its token, or (nil, nil) if absent.
	GetByToken(token string) (*models.Session, error)
	// DeleteByToken removes the session for a token. Deleting an unknown
	// token is not an error.
	DeleteByToken(token string) error
}
