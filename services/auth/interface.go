package auth

import (
	"context"
	"time"

	userRepo "neuroglove/database/repository/user"
	"neuroglove/models"
)

// AuthService defines the request-facing authentication contract.
type AuthService interface {
	// Register creates a local account and issues its first session.
	// Returns ErrDuplicateEmail when the email is taken.
	Register(req models.UserRegister) (*AuthResult, error)
	// Login verifies credentials and issues a new session. Returns
	// ErrInvalidCredentials on any mismatch.
	Login(req models.UserLogin) (*AuthResult, error)
	// ResolveUser maps a bearer token to its user. A missing, expired, or
	// orphaned session yields (nil, nil); only store failures error.
	ResolveUser(token string) (*models.User, error)
	// BridgeExchange trades an external session handle for a verified
	// identity, provisioning the user on first sight. Returns
	// ErrBridgeUnavailable when the upstream call fails.
	BridgeExchange(ctx context.Context, externalSessionID string) (*AuthResult, error)
	// Logout revokes the session for a token; idempotent.
	Logout(token string) error
	// UpdateProfile applies a partial profile update and returns the
	// sanitized record.
	UpdateProfile(userID string, req models.UserUpdate) (*models.User, error)
}

// AuthResult carries the identity and session material of a successful
// register, login, or bridge exchange. The token is set as a cookie by the
// handler; session issuance is always the last step of the success path.
type AuthResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo     userRepo.UserRepository
	Sessions *SessionManager
	Bridge   BridgeClient
}
