package auth

import (
	"fmt"

	"neuroglove/models"
	"neuroglove/utils"

	"go.uber.org/zap"
)

// ResolveUser maps a bearer token to its user record. Every protected
// operation runs through here. A missing, expired, or orphaned session is
// not an error: it simply resolves to no identity.
func (s *DefaultAuthService) ResolveUser(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	userID, err := s.Sessions.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if userID == "" {
		return nil, nil
	}

	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if userRec == nil {
		// Orphaned session: the token is live but its user is gone.
		utils.GetLogger().Warn("Session references missing user", zap.String("userID", userID))
		return nil, nil
	}

	userRec.PasswordHash = ""
	return userRec, nil
}
