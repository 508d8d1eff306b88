package sensorRepo

import "neuroglove/models"

// SensorDataRepository defines methods for sensor-reading data access.
type SensorDataRepository interface {
	// Insert appends a reading.
	Insert(data *models.SensorData) error
	// Latest retrieves up to limit readings for a user's device,
	// newest first.
	Latest(userID, deviceID string, limit int64) ([]models.SensorData, error)
}
