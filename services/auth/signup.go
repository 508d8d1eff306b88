package auth

import (
	"errors"
	"fmt"
	"time"

	userRepo "neuroglove/database/repository/user"
	"neuroglove/models"
	"neuroglove/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Register creates a local account and issues its first session. The store's
// unique email index is the authoritative uniqueness gate; a duplicate-key
// insert surfaces as ErrDuplicateEmail.
func (s *DefaultAuthService) Register(req models.UserRegister) (*AuthResult, error) {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.Repo.Create(userObj); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil, ErrDuplicateEmail
		}
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	// Session issuance is the last step: a failure here leaves no half-set
	// cookie behind.
	token, expiresAt, err := s.Sessions.Issue(userObj.ID)
	if err != nil {
		utils.GetLogger().Error("Register: failed to issue session", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj.PasswordHash = ""
	return &AuthResult{User: userObj, Token: token, ExpiresAt: expiresAt}, nil
}
