package handlers

import (
	"net/http"

	"neuroglove/middleware"
	"neuroglove/models"
	"neuroglove/services/device"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceHandler exposes device pairing and sensor data endpoints.
type DeviceHandler struct {
	Service device.DeviceService
}

// NewDeviceHandler creates a DeviceHandler backed by the given service.
func NewDeviceHandler(svc device.DeviceService) *DeviceHandler {
	return &DeviceHandler{Service: svc}
}

// SaveDeviceHandler records a device pairing for the authenticated user.
func (h *DeviceHandler) SaveDeviceHandler(c *gin.Context) {
	logger := getLogger(c)

	userRec, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.DeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	dev, err := h.Service.SaveDevice(userRec.ID, req)
	if err != nil {
		logger.Error("Failed to save device", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "device": dev})
}

// GetDevicesHandler lists the authenticated user's paired devices.
func (h *DeviceHandler) GetDevicesHandler(c *gin.Context) {
	logger := getLogger(c)

	userRec, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	devices, err := h.Service.ListDevices(userRec.ID)
	if err != nil {
		logger.Error("Failed to list devices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve devices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"devices": devices})
}

// SaveSensorDataHandler appends a sensor reading.
func (h *DeviceHandler) SaveSensorDataHandler(c *gin.Context) {
	logger := getLogger(c)

	userRec, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.SensorDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.SaveSensorData(userRec.ID, req); err != nil {
		logger.Error("Failed to save sensor data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save sensor data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSensorDataHandler returns the latest readings for one device.
func (h *DeviceHandler) GetSensorDataHandler(c *gin.Context) {
	logger := getLogger(c)

	userRec, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	deviceID := c.Param("deviceId")
	readings, err := h.Service.GetSensorData(userRec.ID, deviceID)
	if err != nil {
		logger.Error("Failed to retrieve sensor data",
			zap.String("deviceId", deviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sensor data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": readings})
}
