package auth

import (
	"fmt"

	"neuroglove/models"
	"neuroglove/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// placeholderDigest keeps the unknown-email branch doing the same bcrypt
// work as the wrong-password branch.
var placeholderDigest string

func init() {
	placeholderDigest, _ = HashPassword(uuid.New().String())
}

// Login verifies credentials and issues a new session. Unknown email and
// wrong password both return ErrInvalidCredentials.
func (s *DefaultAuthService) Login(req models.UserLogin) (*AuthResult, error) {
	userRec, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if userRec == nil {
		CheckPassword(req.Password, placeholderDigest)
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(req.Password, userRec.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.Sessions.Issue(userRec.ID)
	if err != nil {
		utils.GetLogger().Error("Login: failed to issue session", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	userRec.PasswordHash = ""
	return &AuthResult{User: userRec, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the session for a token; a blank or unknown token is a
// no-op.
func (s *DefaultAuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.Revoke(token)
}
