package auth

import (
	"fmt"

	"neuroglove/models"
	"neuroglove/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UpdateProfile applies only the provided fields and returns the sanitized
// updated record. Callers must have resolved the identity already.
func (s *DefaultAuthService) UpdateProfile(userID string, req models.UserUpdate) (*models.User, error) {
	logger := utils.GetLogger()

	setFields := bson.M{}
	if req.Name != nil {
		setFields["name"] = *req.Name
	}
	if req.Picture != nil {
		setFields["picture"] = *req.Picture
	}
	if req.EmailNotifications != nil {
		setFields["emailNotifications"] = *req.EmailNotifications
	}

	if len(setFields) > 0 {
		if err := s.Repo.UpdateFields(userID, setFields); err != nil {
			logger.Error("UpdateProfile: failed to apply update",
				zap.String("userID", userID), zap.Error(err))
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	updated, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated profile: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}

	updated.PasswordHash = ""
	return updated, nil
}
