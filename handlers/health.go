package handlers

import (
	"net/http"

	"neuroglove/utils"

	"github.com/gin-gonic/gin"
)

// RootHandler is the API banner.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Bluetooth Connector API"})
}

// HealthHandler returns the latest health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
}
