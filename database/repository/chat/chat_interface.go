package chatRepo

import "neuroglove/models"

// ChatRepository defines methods for chat-history data access.
type ChatRepository interface {
	// Insert appends one assistant exchange.
	Insert(msg *models.ChatMessage) error
	// History retrieves up to limit exchanges for a user, newest first.
	History(userID string, limit int64) ([]models.ChatMessage, error)
}
