package handlers

import (
	"net/http"

	"neuroglove/middleware"
	"neuroglove/models"
	"neuroglove/services/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler exposes the problem-report endpoint.
type ReportHandler struct {
	Service report.ReportService
}

// NewReportHandler creates a ReportHandler backed by the given service.
func NewReportHandler(svc report.ReportService) *ReportHandler {
	return &ReportHandler{Service: svc}
}

// SendProblemHandler stores a problem report and mails it best-effort.
func (h *ReportHandler) SendProblemHandler(c *gin.Context) {
	logger := getLogger(c)

	userRec, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.ProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := h.Service.Submit(userRec, req.Problem); err != nil {
		logger.Error("Failed to store problem report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit problem report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Problem reported successfully"})
}
