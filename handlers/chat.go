package handlers

import (
	"net/http"

	"neuroglove/middleware"
	"neuroglove/models"
	"neuroglove/services/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the assistant relay endpoints.
type ChatHandler struct {
	Service chat.ChatService
}

// NewChatHandler creates a ChatHandler backed by the given service.
func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// SendHandler relays one message to the assistant. Upstream failures
// surface as a generic 500.
func (h *ChatHandler) SendHandler(c *gin.Context) {
	logger := getLogger(c)

	userRec, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.Service.Send(c.Request.Context(), userRec.ID, req.Message)
	if err != nil {
		logger.Error("Chat error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

// HistoryHandler returns the user's recent assistant exchanges.
func (h *ChatHandler) HistoryHandler(c *gin.Context) {
	logger := getLogger(c)

	userRec, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	history, err := h.Service.History(userRec.ID)
	if err != nil {
		logger.Error("Failed to retrieve chat history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
