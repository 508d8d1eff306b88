package userRepo

import (
	"errors"

	"neuroglove/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrEmailTaken is returned by Create when the unique email index rejects the
// insert. The store index is the authoritative uniqueness gate.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID, or (nil, nil) if absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or (nil, nil) if absent.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record. Returns ErrEmailTaken on a
	// duplicate email.
	Create(user *models.User) error
	// UpdateFields applies a partial $set update to a user document.
	UpdateFields(id string, fields bson.M) error
}
