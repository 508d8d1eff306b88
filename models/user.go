// File: neuroglove/models/user.go
package models

import "time"

// User represents a companion-app account. PasswordHash is empty for
// accounts provisioned through the delegated auth bridge; those users
// cannot sign in with a password.
type User struct {
	ID                 string    `bson:"id" json:"id"`
	Email              string    `bson:"email" json:"email"`
	Name               string    `bson:"name,omitempty" json:"name,omitempty"`
	Picture            string    `bson:"picture,omitempty" json:"picture,omitempty"`
	PasswordHash       string    `bson:"passwordHash,omitempty" json:"-"`
	EmailNotifications bool      `bson:"emailNotifications" json:"emailNotifications"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserRegister is the registration request body.
type UserRegister struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// UserLogin is the login request body.
type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserUpdate carries a partial profile update. Only non-nil fields are applied.
type UserUpdate struct {
	Name               *string `json:"name"`
	Picture            *string `json:"picture"`
	EmailNotifications *bool   `json:"email_notifications"`
}
