// File: neuroglove/models/session.go
package models

import "time"

// Session is a server-side record of an issued bearer token. A session past
// its expiry is treated as invalid but is not eagerly purged.
type Session struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Token     string    `bson:"sessionToken" json:"-"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
