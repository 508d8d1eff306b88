package chat

import (
	"context"
	"fmt"
	"time"

	chatRepo "neuroglove/database/repository/chat"
	"neuroglove/models"
	"neuroglove/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SystemPrompt frames the assistant for the companion app.
const SystemPrompt = "You are a helpful assistant for a Bluetooth device connection platform. " +
	"Help users with their questions about connecting devices, troubleshooting issues, " +
	"and using the platform features."

// historyLimit caps how many exchanges the history endpoint returns.
const historyLimit = 50

// Generator produces an assistant reply for a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ChatService relays user messages to the assistant and records the exchange.
type ChatService interface {
	Send(ctx context.Context, userID, message string) (string, error)
	History(userID string) ([]models.ChatMessage, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Generator Generator
	Repo      chatRepo.ChatRepository
}

// Send relays the message and persists the exchange. A failed history write
// does not discard the reply.
func (s *DefaultChatService) Send(ctx context.Context, userID, message string) (string, error) {
	response, err := s.Generator.GenerateContent(ctx, message)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}

	msg := &models.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		Response:  response,
		Timestamp: time.Now(),
	}
	if err := s.Repo.Insert(msg); err != nil {
		utils.GetLogger().Error("Failed to persist chat exchange",
			zap.String("userID", userID), zap.Error(err))
	}
	return response, nil
}

// History returns the user's most recent exchanges, newest first.
func (s *DefaultChatService) History(userID string) ([]models.ChatMessage, error) {
	return s.Repo.History(userID, historyLimit)
}
