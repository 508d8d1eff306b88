// File: neuroglove/models/chat.go
package models

import "time"

// ChatMessage stores one exchange with the assistant.
type ChatMessage struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Message   string    `bson:"message" json:"message"`
	Response  string    `bson:"response" json:"response"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ChatRequest is the chat request body.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
